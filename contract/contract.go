//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Connection is one peer of the broker, either a remote WAMP client or the
// embedded bot. Event, CallResult and CallError must not block: they are
// called while the dispatcher holds its lock.
type Connection interface {
	SessionID() string
	ResourceID() int64
	// NameHint is the display name the peer asked for, possibly empty.
	NameHint() string
	Event(topic string, payload any)
	CallResult(callID string, payload any)
	CallError(callID string, payload any)
	Close()
}

// IDispatcher is what a transport feeds with lifecycle and protocol events.
type IDispatcher interface {
	OnOpen(conn Connection)
	OnClose(conn Connection)
	OnCall(conn Connection, callID, procedure string, params []string)
	OnSubscribe(conn Connection, topic string)
	OnUnsubscribe(conn Connection, topic string)
	OnPublish(conn Connection, topic, event string, exclude, eligible []string)
	OnError(conn Connection, err error)
}
