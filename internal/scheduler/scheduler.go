// Package scheduler serializes background index work for the LSP server:
// low-priority commits of open-document footnote stats and high-priority
// explicit reindex requests share one queue so sqlite writes never overlap
// with each other.
package scheduler

import (
	"log"
	"sync"
	"time"
)

// Task is one unit of deferred index work.
type Task struct {
	Name    string
	Execute func() error
}

// Scheduler runs queued tasks on a single worker goroutine.
type Scheduler struct {
	taskQueue chan Task
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewScheduler creates a Scheduler with the specified queue size.
func NewScheduler(queueSize int) *Scheduler {
	return &Scheduler{
		taskQueue: make(chan Task, queueSize),
		stopChan:  make(chan struct{}),
	}
}

// Run starts the worker loop.
func (s *Scheduler) Run() {
	go func() {
		for {
			select {
			case task, ok := <-s.taskQueue:
				if !ok {
					return
				}
				s.execute(task)
			case <-s.stopChan:
				// Drain the queue before exiting.
				for task := range s.taskQueue {
					s.execute(task)
				}
				return
			}
		}
	}()
}

func (s *Scheduler) execute(task Task) {
	defer s.wg.Done()
	if err := task.Execute(); err != nil {
		log.Printf("scheduler: task %s failed: %v", task.Name, err)
	}
}

// Schedule runs a task as soon as the worker is free.
func (s *Scheduler) Schedule(task Task) {
	s.wg.Add(1)
	s.taskQueue <- task
}

// TrySchedule queues a low-priority task, dropping it when the queue is
// full. Reports whether the task was queued.
func (s *Scheduler) TrySchedule(task Task) bool {
	s.wg.Add(1)
	select {
	case s.taskQueue <- task:
		return true
	default:
		s.wg.Done()
		return false
	}
}

// SchedulePeriodic queues task every interval until Stop is called. Runs
// in the calling goroutine.
func (s *Scheduler) SchedulePeriodic(interval time.Duration, task Task) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.TrySchedule(task) {
				log.Printf("scheduler: dropped periodic task %s, queue full", task.Name)
			}
		case <-s.stopChan:
			return
		}
	}
}

// Stop waits for queued tasks to finish and stops the worker.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		close(s.taskQueue)
	})
	s.wg.Wait()
}
