package memory

import (
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/service/dao"
	"github.com/viant/alds/service/dao/criteria"
	"github.com/viant/alds/service/dao/store"
)

// Service keeps run history in memory. Records are copied on Save and Load so
// callers can keep mutating their own instance.
type Service struct {
	*store.MemoryStore[string, run.Run]
}

func keyOf(r *run.Run) string {
	return r.ID
}

func clone(r *run.Run) *run.Run {
	ret := *r
	return &ret
}

// filter supports State and Service parameters
func filter(r *run.Run, parameters []*dao.Parameter) bool {
	return criteria.Match("State", string(r.State), parameters) &&
		criteria.Match("Service", r.Service, parameters)
}

// New creates an in-memory run DAO
func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, run.Run](keyOf,
			store.WithClone[string, run.Run](clone),
			store.WithFilter[string, run.Run](filter)),
	}
}

// Compile-time check that Service implements the generic DAO interface.
var _ dao.Service[string, run.Run] = (*Service)(nil)
