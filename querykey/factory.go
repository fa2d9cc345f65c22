package querykey

const (
	segmentList   = "list"
	segmentDetail = "detail"
)

// Factory produces the key hierarchy for a single resource tag. The zero
// value is not usable; construct with NewFactory.
type Factory struct {
	tag     string
	encoder ParamEncoder
}

// NewFactory creates a key factory for the given resource tag using the
// default param encoder.
func NewFactory(tag string) Factory {
	return NewFactoryWithEncoder(tag, NewDefaultEncoder())
}

// NewFactoryWithEncoder creates a key factory with a custom param encoder.
func NewFactoryWithEncoder(tag string, encoder ParamEncoder) Factory {
	return Factory{tag: tag, encoder: encoder}
}

// Tag returns the resource tag this factory is bound to.
func (f Factory) Tag() string {
	return f.tag
}

// All returns the root key for the resource. Invalidating it drops every
// cached entry for the resource, list and detail alike.
func (f Factory) All() Key {
	return NewKey(f.tag)
}

// Lists returns the shared prefix of every list key. It is a strict prefix
// of List(params) for any non-nil params.
func (f Factory) Lists() Key {
	return f.All().append(segmentList)
}

// List returns the key for a parameterized list query. A nil params value
// collapses to Lists(), matching an unfiltered list view.
func (f Factory) List(params any) Key {
	key := f.Lists()
	if params == nil {
		return key
	}
	return key.append(f.encoder.Encode(params))
}

// Details returns the shared prefix of every detail key. It is a strict
// prefix of Detail(id, params) for any id.
func (f Factory) Details() Key {
	return f.All().append(segmentDetail)
}

// Detail returns the key for a single record, optionally refined by query
// params (field selection, relation expansion). A nil params value yields
// the plain id-scoped key.
func (f Factory) Detail(id string, params any) Key {
	key := f.Details().append(id)
	if params == nil {
		return key
	}
	return key.append(f.encoder.Encode(params))
}
