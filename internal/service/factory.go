package service

import (
	"launchloom.app/studio/common/security"
	"launchloom.app/studio/internal/queue"
	"launchloom.app/studio/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	tokens   *security.TokenIssuer
	events   queue.Producer
}

// NewServices wires the service layer. events may be nil when run events are
// not published.
func NewServices(stores *store.Stores, txRunner TxRunner, tokens *security.TokenIssuer, events queue.Producer) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		tokens:   tokens,
		events:   events,
	}
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(
		s.stores.Workspaces(),
		s.stores.WorkspaceMembers(),
		s.stores.WorkspaceRuns(),
		s.txRunner,
	)
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.stores.Workspaces(), s.stores.WorkspaceMembers(), s.stores.Users())
}

func (s *Services) Runs() RunService {
	return NewRunService(s.stores.Workspaces(), s.stores.WorkspaceRuns(), s.events)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.tokens)
}
