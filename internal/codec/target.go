package codec

type target struct {
	buffer []byte
}

// Marshal writes the given object into this target. Panics raised while marshaling are recovered and returned.
func (t *target) Marshal(object Marshaler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered("marshaling", r)
		}
	}()

	t.Write(object)
	return nil
}

// Write writes the given (non-nil) object into this target. Panics are not recovered.
func (t *target) Write(object Marshaler) {
	if object == nil {
		panic("Write called with nil object")
	}
	object.MarshalTo(t)
}

func (t *target) WriteUint8(value byte) {
	t.buffer = append(t.buffer, value)
}

func (t *target) WriteBool(value bool) {
	if value {
		t.WriteUint8(1)
	} else {
		t.WriteUint8(0)
	}
}
