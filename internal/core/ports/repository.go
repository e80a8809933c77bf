package ports

import "go.mongodb.org/mongo-driver/bson"

// The three capability roles a request/response payload can take on. A
// concrete DTO implements whichever roles its operations need; the generic
// repository accepts role-implementing values rather than concrete types.

// Creatable converts an input payload into a persistable entity. Construction
// rules (digesting passwords, assigning default roles) belong to the DTO.
type Creatable[E any] interface {
	ToEntity() E
}

// Updatable produces a partial-update document containing only the fields the
// payload marks as present. An empty document means nothing to change.
type Updatable[E any] interface {
	UpdateDocument() bson.M
}

// Filterable produces a predicate over entities of type E.
type Filterable[E any] interface {
	FilterDocument() bson.M
}

// Projectable declares the read-shape derived from an entity. The projection
// is derived from the type itself, never from an instance, so implementations
// must be meaningful as zero values.
type Projectable[E any] interface {
	ProjectionDocument() bson.M
}
