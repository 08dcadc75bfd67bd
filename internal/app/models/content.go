package models

// Content places one kind item inside a module. (Kind, ObjectID) names a row
// in the kind's table; the storage layer does not enforce that the row exists.
type Content struct {
	ID       int64 `json:"id" db:"id"`
	ModuleID int64 `json:"moduleId" db:"module_id" validate:"gt=0"`
	Kind     Kind  `json:"kind" db:"kind" validate:"required,oneof=text file image video"`
	ObjectID int64 `json:"objectId" db:"object_id" validate:"gt=0"`

	// Item is the resolved target, nil when unresolved or dangling
	Item Item `json:"item" validate:"-"`
}
