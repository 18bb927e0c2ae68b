package entity

import "encoding/json"

// Optional distinguishes the three states a JSON patch field can be in:
// key absent (Defined=false), explicit null (Defined=true, Value=nil), and a
// concrete value. encoding/json only invokes UnmarshalJSON for keys that are
// present, which is what makes the absent case detectable.
type Optional[T any] struct {
	Defined bool
	Value   *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Defined = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
