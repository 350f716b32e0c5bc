package behaviour

// Behaviour is the hook set the engine drives each frame. Start runs once
// before the first Update, inside the render loop.
type Behaviour interface {
	Start()
	Update()
	UpdateFixed()
}

type BehaviourWrapper struct {
	Behaviour Behaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

var GlobalBehaviourManager = NewBehaviourManager()

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

func (m *BehaviourManager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			// Remove by swapping with last element and truncating
			m.behaviours[i] = m.behaviours[len(m.behaviours)-1]
			m.behaviours = m.behaviours[:len(m.behaviours)-1]
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) UpdateAll() {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].Behaviour.Update()
	}
}

func (m *BehaviourManager) UpdateAllFixed() {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].Behaviour.UpdateFixed()
	}
}
