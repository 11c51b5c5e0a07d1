package event

import "testing"

func TestRegister(t *testing.T) {
	c := NewCollection()
	Register[greetEvent](c)
	Register[tickEvent](c)

	if c.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", c.Len())
	}
	if !c.Contains(TypeIDOf[greetEvent]()) {
		t.Error("expected collection to contain greetEvent")
	}
	if c.Contains(TypeIDOf[updateA]()) {
		t.Error("did not expect collection to contain updateA")
	}
}

func TestRegister_DuplicateType(t *testing.T) {
	c := NewCollection()
	Register[greetEvent](c)

	mustPanic(t, "greeting registered twice", func() {
		Register[greetEvent](c)
	})
}

func TestRegister_DuplicateName(t *testing.T) {
	c := NewCollection()
	Register[greetEvent](c)

	// clashEvent is a different type but reuses the name "greeting".
	mustPanic(t, "another event with name greeting", func() {
		Register[clashEvent](c)
	})
}

func TestRegister_ReservedSeparator(t *testing.T) {
	c := NewCollection()

	mustPanic(t, "reserved separator", func() {
		Register[separatorNameEvent](c)
	})
}

func TestRegister_EmptyName(t *testing.T) {
	c := NewCollection()

	mustPanic(t, "empty event name", func() {
		Register[emptyNameEvent](c)
	})
}

func TestCollect(t *testing.T) {
	collection, dataTypes, types := Collect(For[greetEvent](), For[tickEvent]())

	if collection.Len() != 2 {
		t.Errorf("expected 2 registrations, got %d", collection.Len())
	}

	if len(dataTypes) != 2 {
		t.Fatalf("expected 2 data types, got %d", len(dataTypes))
	}
	if dataTypes[0].Name != "greeting" || dataTypes[1].Name != "tick" {
		t.Errorf("expected registration order preserved, got %s then %s",
			dataTypes[0].Name, dataTypes[1].Name)
	}
	for _, dt := range dataTypes {
		if dt.Type == nil {
			t.Errorf("expected a schema for %s", dt.Name)
		}
	}

	if types.Len() != 2 {
		t.Errorf("expected 2 type map entries, got %d", types.Len())
	}
	if _, ok := types.Get(TypeIDOf[greetEvent]()); !ok {
		t.Error("expected type map entry for greetEvent")
	}
	if name, _ := types.Name(TypeIDOf[tickEvent]()); name != "tick" {
		t.Errorf("expected name tick, got %q", name)
	}
}

func TestCollect_Duplicate(t *testing.T) {
	mustPanic(t, "registered twice", func() {
		Collect(For[greetEvent](), For[greetEvent]())
	})
}
