package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML document read by the seed tool:
//
//	actions:
//	  - routeId: R1
//	    locationGroupName: ZoneRoot
//	    name: store in zone
//	    actionType: MOVE
//	    programKey: STORE_ZONE
type SeedFile struct {
	Actions []SeedAction `yaml:"actions"`
}

// SeedAction is one rule. ID is optional; a random one is generated when empty.
type SeedAction struct {
	ID                string `yaml:"id"`
	RouteID           string `yaml:"routeId"`
	LocationKey       string `yaml:"locationKey"`
	LocationGroupName string `yaml:"locationGroupName"`
	Name              string `yaml:"name"`
	ActionType        string `yaml:"actionType"`
	ProgramKey        string `yaml:"programKey"`
	Description       string `yaml:"description"`
}

// LoadSeed decodes a seed file into create commands. Every entry is validated
// and all problems are reported together.
func LoadSeed(r io.Reader) ([]commands.CreateActionCommand, error) {
	var file SeedFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	cmds := make([]commands.CreateActionCommand, 0, len(file.Actions))
	var problems []error
	for i, entry := range file.Actions {
		id := kernel.NewUUID()
		if entry.ID != "" {
			parsed, err := kernel.UUIDFromString(entry.ID)
			if err != nil {
				problems = append(problems, fmt.Errorf("action #%d: %w", i+1, err))
				continue
			}
			id = parsed
		}

		cmd, err := commands.NewCreateActionCommand(id, entry.RouteID, entry.LocationKey, entry.LocationGroupName,
			action.Definition{
				Name:        entry.Name,
				ActionType:  entry.ActionType,
				ProgramKey:  entry.ProgramKey,
				Description: entry.Description,
			})
		if err != nil {
			problems = append(problems, fmt.Errorf("action #%d: %w", i+1, err))
			continue
		}
		cmds = append(cmds, cmd)
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return cmds, nil
}

// Seed writes cmds to the configured action store. Rules whose (route, target)
// pair is already taken are skipped and logged.
func (c *CompositionRoot) Seed(ctx context.Context, cmds []commands.CreateActionCommand) (written, skipped int, err error) {
	handler := c.CreateCreateActionCommandHandler()
	for _, cmd := range cmds {
		if err := handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, commands.ErrActionAlreadyExists) {
				c.logger.WarnContext(ctx, "Action already seeded",
					"route", cmd.Route().ID(), "target", cmd.Target().String())
				skipped++
				continue
			}
			return written, skipped, err
		}
		written++
	}
	return written, skipped, nil
}
