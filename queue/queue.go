package queue

import (
	"context"
	"fmt"
	"sync"
)

// Queue represents a FIFO queue where tasks to learn
// tree nodes can be pushed and pulled.
//
// Push and Pull take a context.Context and fail with
// its error once it is done.
type Queue interface {
	// Push takes a task and stores it in the queue or
	// returns an error.
	Push(context.Context, *Task) error
	// Pull returns the oldest task in the queue and
	// removes it from it, or an error. If there are no
	// tasks to pull, it returns nil and no error.
	Pull(context.Context) (*Task, error)
	// Count returns the number of pending tasks in the
	// queue.
	Count() int
}

type memQueue struct {
	pendingTasks []*Task
	head         int
	tail         int
	pending      int
	lock         sync.Mutex
}

// New returns a queue backed only by the process memory
func New() Queue {
	return &memQueue{}
}

func (mq *memQueue) Push(ctx context.Context, t *Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mq.lock.Lock()
	defer mq.lock.Unlock()
	mq.push(t)
	return nil
}

func (mq *memQueue) Pull(ctx context.Context) (*Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mq.lock.Lock()
	defer mq.lock.Unlock()
	if mq.pending == 0 {
		return nil, nil
	}
	mq.pending--
	task := mq.pendingTasks[mq.head]
	mq.pendingTasks[mq.head] = nil
	mq.head = (mq.head + 1) % len(mq.pendingTasks)
	return task, nil
}

func (mq *memQueue) Count() int {
	mq.lock.Lock()
	defer mq.lock.Unlock()
	return mq.pending
}

func (mq *memQueue) String() string {
	return fmt.Sprintf("{Queue pending: %d (head:%d tail:%d)}", mq.pending, mq.head, mq.tail)
}

// push appends t, growing the ring buffer when it is full.
func (mq *memQueue) push(t *Task) {
	if mq.pending == len(mq.pendingTasks) {
		mq.reorder()
		mq.pendingTasks = append(mq.pendingTasks, t)
		mq.tail = 0
	} else {
		mq.pendingTasks[mq.tail] = t
		mq.tail = (mq.tail + 1) % len(mq.pendingTasks)
	}
	mq.pending++
}

// reorder rotates a full buffer so that its head is at index 0.
func (mq *memQueue) reorder() {
	if mq.head == 0 {
		return
	}
	mq.pendingTasks = append(mq.pendingTasks[mq.head:], mq.pendingTasks[:mq.head]...)
	mq.head = 0
}
