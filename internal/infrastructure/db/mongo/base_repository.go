package mongo

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fcg-platform/users-svc/internal/core/ports"
)

// BaseRepository implements the entity-agnostic persistence operations over a
// single collection. Typed repositories embed it and bind the projection
// shape through the package-level generic query functions.
type BaseRepository[E any] struct {
	coll *mongo.Collection
}

func NewBaseRepository[E any](db *mongo.Database, collection string) *BaseRepository[E] {
	return &BaseRepository[E]{coll: db.Collection(collection)}
}

// Create converts the DTO to an entity and inserts it. The store-generated id
// is written back into the returned entity; callers needing the full
// projected shape issue a follow-up GetByID, there is no transaction tying
// the two together.
func (r *BaseRepository[E]) Create(ctx context.Context, in ports.Creatable[E]) (*E, error) {
	entity := in.ToEntity()

	res, err := r.coll.InsertOne(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", r.coll.Name(), err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		assignID(&entity, oid)
	}
	return &entity, nil
}

// FindOne returns the first entity matching filter, or (nil, nil) when there
// is none.
func (r *BaseRepository[E]) FindOne(ctx context.Context, filter bson.M) (*E, error) {
	var entity E
	err := r.coll.FindOne(ctx, filter).Decode(&entity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find one in %s: %w", r.coll.Name(), err)
	}
	return &entity, nil
}

// Update applies the partial patch the DTO describes. A patch with nothing to
// change is a no-op rather than an error.
func (r *BaseRepository[E]) Update(ctx context.Context, id primitive.ObjectID, in ports.Updatable[E]) error {
	update := in.UpdateDocument()
	if len(update) == 0 {
		return nil
	}

	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("update %s: %w", r.coll.Name(), err)
	}
	return nil
}

// Delete removes the entity with the given id. Deleting an absent id
// succeeds; the operation is idempotent.
func (r *BaseRepository[E]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete from %s: %w", r.coll.Name(), err)
	}
	return nil
}

// GetByID fetches one entity projected into shape P, or (nil, nil) when the
// id is absent. The projection document comes from P's zero value.
func GetByID[E any, P ports.Projectable[E]](ctx context.Context, r *BaseRepository[E], id primitive.ObjectID) (*P, error) {
	var shape P
	opts := options.FindOne().SetProjection(shape.ProjectionDocument())

	var projected P
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&projected)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", r.coll.Name(), err)
	}
	return &projected, nil
}

// GetAll returns every entity projected into shape P, in store-native order.
func GetAll[E any, P ports.Projectable[E]](ctx context.Context, r *BaseRepository[E]) ([]P, error) {
	return findProjected[E, P](ctx, r, bson.M{})
}

// Find returns the entities matching the filter's predicate, projected into
// shape P.
func Find[E any, P ports.Projectable[E]](ctx context.Context, r *BaseRepository[E], filter ports.Filterable[E]) ([]P, error) {
	return findProjected[E, P](ctx, r, filter.FilterDocument())
}

func findProjected[E any, P ports.Projectable[E]](ctx context.Context, r *BaseRepository[E], filter bson.M) ([]P, error) {
	var shape P
	opts := options.Find().SetProjection(shape.ProjectionDocument())

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var projected []P
	if err := cursor.All(ctx, &projected); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", r.coll.Name(), err)
	}
	return projected, nil
}

// assignID writes the generated ObjectID into the entity's ID field, when the
// entity has one of the right type.
func assignID[E any](entity *E, id primitive.ObjectID) {
	v := reflect.ValueOf(entity).Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	field := v.FieldByName("ID")
	if field.IsValid() && field.CanSet() && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
		field.Set(reflect.ValueOf(id))
	}
}
