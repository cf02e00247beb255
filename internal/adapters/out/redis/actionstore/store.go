// Package actionstore keeps Action rules in Redis as JSON values, one key per
// (route, target) pair. Two index keys make the full repository contract
// possible: an id key pointing at the rule's key and a per-route set of rule
// keys.
//
// Key segments are query-escaped, so no route or target value can forge the
// ":" separators of another key.
package actionstore

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"routing/internal/core/domain/model/action"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "routing:action"
	idPrefix    = "routing:action-id"
	routePrefix = "routing:route-actions"
)

// record is the stored JSON document of one Action.
type record struct {
	ID                string `json:"id"`
	RouteID           string `json:"routeId"`
	LocationKey       string `json:"locationKey,omitempty"`
	LocationGroupName string `json:"locationGroupName,omitempty"`
	Name              string `json:"name"`
	ActionType        string `json:"actionType"`
	ProgramKey        string `json:"programKey"`
	Description       string `json:"description,omitempty"`
}

// RedisActionStore implements ports.ActionRepository on Redis. Writes apply
// immediately; there is no transaction to join.
type RedisActionStore struct {
	client redis.UniversalClient
}

func NewRedisActionStore(client redis.UniversalClient) *RedisActionStore {
	return &RedisActionStore{client: client}
}

func segment(s string) string {
	return url.QueryEscape(s)
}

func locationKey(routeID, coordinate string) string {
	return fmt.Sprintf("%s:%s:loc:%s", keyPrefix, segment(routeID), segment(coordinate))
}

func groupKey(routeID, groupName string) string {
	return fmt.Sprintf("%s:%s:grp:%s", keyPrefix, segment(routeID), segment(groupName))
}

func idKey(id kernel.UUID) string {
	return fmt.Sprintf("%s:%s", idPrefix, id.String())
}

func routeKey(routeID string) string {
	return fmt.Sprintf("%s:%s", routePrefix, segment(routeID))
}

func keyOf(a *action.Action) string {
	if coordinate, ok := a.Target().LocationKey(); ok {
		return locationKey(a.Route().ID(), coordinate.String())
	}
	name, _ := a.Target().LocationGroupName()
	return groupKey(a.Route().ID(), name)
}

// Add stores a new Action. A (route, target) pair that is already taken is
// reported as an errs.ObjectExistsError.
func (s *RedisActionStore) Add(ctx context.Context, a *action.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(fromDomain(a))
	if err != nil {
		return fmt.Errorf("marshal action %s: %w", a.ID(), err)
	}

	key := keyOf(a)
	stored, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return fmt.Errorf("setnx %s: %w", key, err)
	}
	if !stored {
		return errs.NewObjectExistsError("action", a.Route().ID()+"/"+a.Target().String())
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, idKey(a.ID()), key, 0)
		pipe.SAdd(ctx, routeKey(a.Route().ID()), key)
		return nil
	})
	if err != nil {
		// Release the pair so the rule can be added again.
		_ = s.client.Del(context.WithoutCancel(ctx), key).Err()
		return fmt.Errorf("index action %s: %w", a.ID(), err)
	}

	return nil
}

// Get returns the Action with the given id or an errs.ObjectNotFoundError.
func (s *RedisActionStore) Get(ctx context.Context, id kernel.UUID) (*action.Action, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	a, _, err := s.byID(ctx, id)
	return a, err
}

// Delete removes the Action with the given id and its index entries.
func (s *RedisActionStore) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a, key, err := s.byID(ctx, id)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key, idKey(id))
		pipe.SRem(ctx, routeKey(a.Route().ID()), key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete action %s: %w", id, err)
	}

	return nil
}

// ListByRoute returns all actions of a route, location rules first, each kind
// ordered by key. Index entries whose rule is gone are ignored.
func (s *RedisActionStore) ListByRoute(ctx context.Context, r route.Route) ([]*action.Action, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	set := routeKey(r.ID())
	keys, err := s.client.SMembers(ctx, set).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", set, err)
	}

	actions := make([]*action.Action, 0, len(keys))
	if len(keys) == 0 {
		return actions, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget %s: %w", set, err)
	}

	for i, value := range values {
		data, ok := value.(string)
		if !ok {
			continue
		}
		rec, err := decode(keys[i], []byte(data))
		if err != nil {
			return nil, err
		}
		if rec.RouteID != r.ID() {
			continue
		}
		a, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		actions = append(actions, a)
	}

	slices.SortFunc(actions, compareTargets)
	return actions, nil
}

func (s *RedisActionStore) FindByRouteAndLocationKey(
	ctx context.Context,
	r route.Route,
	coordinate kernel.Coordinate,
) (*action.Action, error) {
	return s.get(ctx, locationKey(r.ID(), coordinate.String()), func(rec record) bool {
		return rec.RouteID == r.ID() && rec.LocationKey == coordinate.String() && rec.LocationGroupName == ""
	})
}

func (s *RedisActionStore) FindByRouteAndLocationGroupName(
	ctx context.Context,
	r route.Route,
	groupName string,
) (*action.Action, error) {
	return s.get(ctx, groupKey(r.ID(), groupName), func(rec record) bool {
		return rec.RouteID == r.ID() && rec.LocationGroupName == groupName && rec.LocationKey == ""
	})
}

// get reads the rule stored under key. A document that does not describe the
// pair the key was built from counts as absence.
func (s *RedisActionStore) get(ctx context.Context, key string, matches func(record) bool) (*action.Action, error) {
	rec, err := s.read(ctx, key)
	if err != nil || rec == nil {
		return nil, err
	}
	if !matches(*rec) {
		return nil, nil
	}

	a, err := rec.toDomain()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return a, nil
}

func (s *RedisActionStore) byID(ctx context.Context, id kernel.UUID) (*action.Action, string, error) {
	key, err := s.client.Get(ctx, idKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", errs.NewObjectNotFoundError("action", id.String())
		}
		return nil, "", fmt.Errorf("get %s: %w", idKey(id), err)
	}

	rec, err := s.read(ctx, key)
	if err != nil {
		return nil, "", err
	}
	if rec == nil || rec.ID != id.String() {
		return nil, "", errs.NewObjectNotFoundError("action", id.String())
	}

	a, err := rec.toDomain()
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", key, err)
	}
	return a, key, nil
}

func (s *RedisActionStore) read(ctx context.Context, key string) (*record, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return decode(key, data)
}

func decode(key string, data []byte) (*record, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return &rec, nil
}

func compareTargets(a, b *action.Action) int {
	aKey, aIsLocation := a.Target().LocationKey()
	bKey, bIsLocation := b.Target().LocationKey()
	switch {
	case aIsLocation && bIsLocation:
		return cmp.Compare(aKey.String(), bKey.String())
	case aIsLocation:
		return -1
	case bIsLocation:
		return 1
	}
	aName, _ := a.Target().LocationGroupName()
	bName, _ := b.Target().LocationGroupName()
	return cmp.Compare(aName, bName)
}

func fromDomain(a *action.Action) record {
	rec := record{
		ID:          a.ID().String(),
		RouteID:     a.Route().ID(),
		Name:        a.Name(),
		ActionType:  a.ActionType(),
		ProgramKey:  a.ProgramKey(),
		Description: a.Description(),
	}
	if coordinate, ok := a.Target().LocationKey(); ok {
		rec.LocationKey = coordinate.String()
	}
	if name, ok := a.Target().LocationGroupName(); ok {
		rec.LocationGroupName = name
	}
	return rec
}

func (rec record) toDomain() (*action.Action, error) {
	id, err := kernel.UUIDFromString(rec.ID)
	if err != nil {
		return nil, err
	}
	r, err := route.NewRoute(rec.RouteID)
	if err != nil {
		return nil, err
	}
	target, err := action.NewTarget(rec.LocationKey, rec.LocationGroupName)
	if err != nil {
		return nil, err
	}
	return action.NewAction(id, r, target, action.Definition{
		Name:        rec.Name,
		ActionType:  rec.ActionType,
		ProgramKey:  rec.ProgramKey,
		Description: rec.Description,
	})
}
