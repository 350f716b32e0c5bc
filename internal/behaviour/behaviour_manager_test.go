package behaviour

import (
	"testing"
)

type countingBehaviour struct {
	starts  int
	updates int
	fixed   int
}

func (c *countingBehaviour) Start()       { c.starts++ }
func (c *countingBehaviour) Update()      { c.updates++ }
func (c *countingBehaviour) UpdateFixed() { c.fixed++ }

func TestStartRunsExactlyOnce(t *testing.T) {
	m := NewBehaviourManager()
	b := &countingBehaviour{}
	m.Add(b)

	m.UpdateAll()
	m.UpdateAll()
	m.UpdateAll()

	if b.starts != 1 {
		t.Errorf("Start should run once, ran %d times", b.starts)
	}

	if b.updates != 3 {
		t.Errorf("Update should run per frame, ran %d times", b.updates)
	}
}

func TestRemoveStopsUpdates(t *testing.T) {
	m := NewBehaviourManager()
	b := &countingBehaviour{}
	m.Add(b)

	m.UpdateAll()
	m.Remove(b)
	m.UpdateAll()

	if b.updates != 1 {
		t.Errorf("Removed behaviour should not update, got %d updates", b.updates)
	}
}

func TestClear(t *testing.T) {
	m := NewBehaviourManager()
	b := &countingBehaviour{}
	m.Add(b)

	m.Clear()
	m.UpdateAll()

	if b.updates != 0 {
		t.Error("Cleared manager should drive nothing")
	}
}

func TestUpdateFixedStartsUnstarted(t *testing.T) {
	m := NewBehaviourManager()
	b := &countingBehaviour{}
	m.Add(b)

	m.UpdateAllFixed()

	if b.starts != 1 || b.fixed != 1 {
		t.Errorf("UpdateAllFixed should start then fixed-update, got starts=%d fixed=%d", b.starts, b.fixed)
	}
}
