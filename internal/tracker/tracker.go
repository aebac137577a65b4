// Package tracker holds the Tracker: the mutable store of declared Agents
// and SuperAgents, the working-agent index rebuilt after every mutation,
// and the recursive resolver that walks it (resolve.go).
package tracker

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"promisetracker/internal/promise"
	"promisetracker/internal/ptlog"
)

// Tracker accumulates Agent and SuperAgent declarations and maintains a
// derived index of "working agents" — the flattened, reduced, and
// instance-expanded view that resolution actually queries. Mutation is
// all-or-nothing: a rebuild failure (e.g. a reduction cycle) leaves the
// Tracker exactly as it was before the call (spec §4.9).
//
// Mutation (AddAgent/AddSuperAgent/AddItem) takes an exclusive lock;
// queries and Resolve take a shared lock, so any number of resolves and
// queries may run concurrently against a Tracker that nobody is mutating
// (spec's reader-writer discipline contract, §4.13).
type Tracker struct {
	mu sync.RWMutex

	availableAgents      []promise.Agent
	availableSuperAgents []promise.SuperAgent
	workingAgents        map[string][]promise.Agent
}

// New builds an empty Tracker.
func New() *Tracker {
	return &Tracker{workingAgents: map[string][]promise.Agent{}}
}

// IsEmpty reports whether the working-agent index is empty.
func (t *Tracker) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.workingAgents) == 0
}

// AddAgent adds a to the available agents, unless an identical (Equal)
// Agent is already present, and rebuilds the working-agent index. On
// failure the Tracker is left unchanged.
func (t *Tracker) AddAgent(a promise.Agent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.availableAgents {
		if existing.Equal(a) {
			return nil
		}
	}
	nextAgents := append(append([]promise.Agent(nil), t.availableAgents...), a)
	working, err := rebuild(nextAgents, t.availableSuperAgents)
	if err != nil {
		return err
	}
	t.availableAgents = nextAgents
	t.workingAgents = working
	logRebuild(nextAgents, t.availableSuperAgents, working)
	return nil
}

// AddSuperAgent adds sa to the available super-agents, unless an
// identical (Equal) SuperAgent is already present, and rebuilds the
// working-agent index. On failure the Tracker is left unchanged.
func (t *Tracker) AddSuperAgent(sa promise.SuperAgent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.availableSuperAgents {
		if existing.Equal(sa) {
			return nil
		}
	}
	nextSuperAgents := append(append([]promise.SuperAgent(nil), t.availableSuperAgents...), sa)
	working, err := rebuild(t.availableAgents, nextSuperAgents)
	if err != nil {
		return err
	}
	t.availableSuperAgents = nextSuperAgents
	t.workingAgents = working
	logRebuild(t.availableAgents, nextSuperAgents, working)
	return nil
}

// logRebuild emits one debug-level structured log per successful rebuild,
// the module's one logging hook in the mutation path (spec calls for
// exactly this shape: agent/superagent/working counts, nothing per-item).
func logRebuild(agents []promise.Agent, superAgents []promise.SuperAgent, working map[string][]promise.Agent) {
	ptlog.Get(ptlog.CategoryTracker).Debug("rebuilt working-agent index",
		zap.Int("agent_count", len(agents)),
		zap.Int("superagent_count", len(superAgents)),
		zap.Int("working_agent_count", len(working)),
	)
}

// AddItem dispatches to AddAgent or AddSuperAgent by it.Kind.
func (t *Tracker) AddItem(it promise.Item) error {
	switch it.Kind {
	case promise.KindAgent:
		return t.AddAgent(*it.Agent)
	case promise.KindSuperAgent:
		return t.AddSuperAgent(*it.SuperAgent)
	default:
		return promise.NewSchemaError("item has neither an Agent nor a SuperAgent")
	}
}

// rebuild derives the working-agent index from scratch: every super-agent
// contributes a merged-and-reduced stub agent (or one instance agent per
// declared Instance, tagged per spec §4.3), and every available agent not
// claimed by a super-agent is merged into the index under its own name.
func rebuild(agents []promise.Agent, superAgents []promise.SuperAgent) (map[string][]promise.Agent, error) {
	next := map[string][]promise.Agent{}
	claimed := map[string]struct{}{}

	for _, sa := range superAgents {
		memberNames := sa.GetAgentNames()
		for name := range memberNames {
			claimed[name] = struct{}{}
		}

		stub := promise.NewAgent(sa.Name)
		for _, a := range agents {
			if _, ok := memberNames[a.Name]; ok {
				stub.Merge(a)
			}
		}
		if err := stub.Reduce(); err != nil {
			return nil, err
		}

		if len(sa.Instances) == 0 {
			mergeWorking(next, stub.Name, stub)
			continue
		}
		for _, inst := range sa.Instances {
			instanceAgent := stub.MakeInstance(inst.Name, inst.ProvidesTag, inst.ConditionsTag)
			for _, p := range inst.Provides {
				instanceAgent.AddProvide(p)
			}
			for _, w := range inst.Wants {
				instanceAgent.AddWant(w)
			}
			mergeWorking(next, instanceAgent.Name, instanceAgent)
		}
	}

	for _, a := range agents {
		if _, ok := claimed[a.Name]; ok {
			continue
		}
		mergeWorking(next, a.Name, a)
	}

	return next, nil
}

func mergeWorking(working map[string][]promise.Agent, name string, a promise.Agent) {
	existing, ok := working[name]
	if !ok {
		working[name] = []promise.Agent{a}
		return
	}
	existing[0].Merge(a)
}

// GetAgentNames returns every declared agent's name, sorted, including
// duplicates for re-declarations of the same name.
func (t *Tracker) GetAgentNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ret := make([]string, 0, len(t.availableAgents))
	for _, a := range t.availableAgents {
		ret = append(ret, a.Name)
	}
	sort.Strings(ret)
	return ret
}

// GetWorkingAgentNames returns every working-agent-index key, sorted.
func (t *Tracker) GetWorkingAgentNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.getWorkingAgentNamesLocked()
}

// getWorkingAgentNamesLocked is the lock-free core of
// GetWorkingAgentNames, for callers (resolve.go's recursive walk) that
// already hold the Tracker's read lock for the duration of a whole
// resolution.
func (t *Tracker) getWorkingAgentNamesLocked() []string {
	ret := make([]string, 0, len(t.workingAgents))
	for name := range t.workingAgents {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// HasAgent reports whether agentName is present in the working-agent
// index.
func (t *Tracker) HasAgent(agentName string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.workingAgents[agentName]
	return ok
}

// HasBehavior reports whether any working agent is party to behaviorName
// (as a provide, a condition, or a want).
func (t *Tracker) HasBehavior(behaviorName string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, variants := range t.workingAgents {
		for _, a := range variants {
			if a.HasBehavior(behaviorName) {
				return true
			}
		}
	}
	return false
}

// IsAgentWantsEmpty reports whether every variant of agentName in the
// working-agent index has no wants. Returns ErrUnknownAgent if agentName
// is not a working agent.
func (t *Tracker) IsAgentWantsEmpty(agentName string) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	variants, ok := t.workingAgents[agentName]
	if !ok {
		return false, promise.NewUnknownAgentError(agentName)
	}
	for _, a := range variants {
		if !a.IsWantsEmpty() {
			return false, nil
		}
	}
	return true, nil
}

// GetAgentWants returns the union of every want name across all variants
// of agentName. Returns ErrUnknownAgent if agentName is not a working
// agent.
func (t *Tracker) GetAgentWants(agentName string) (map[string]struct{}, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	variants, ok := t.workingAgents[agentName]
	if !ok {
		return nil, promise.NewUnknownAgentError(agentName)
	}
	ret := make(map[string]struct{})
	for _, a := range variants {
		for w := range a.GetWants() {
			ret[w] = struct{}{}
		}
	}
	return ret, nil
}

// GetAgentProvides returns the sorted, deduplicated list of provide names
// across all variants of agentName. Returns ErrUnknownAgent if agentName is
// not a working agent.
func (t *Tracker) GetAgentProvides(agentName string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	variants, ok := t.workingAgents[agentName]
	if !ok {
		return nil, promise.NewUnknownAgentError(agentName)
	}
	seen := make(map[string]struct{})
	for _, a := range variants {
		for _, p := range a.Provides {
			seen[p.Name] = struct{}{}
		}
	}
	ret := make([]string, 0, len(seen))
	for name := range seen {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret, nil
}

// GetWorkingBehaviors returns the union of every name (provide, condition,
// or want) across every working agent.
func (t *Tracker) GetWorkingBehaviors() map[string]struct{} {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ret := make(map[string]struct{})
	for _, variants := range t.workingAgents {
		for _, a := range variants {
			for b := range a.GetBehaviors() {
				ret[b] = struct{}{}
			}
		}
	}
	return ret
}
