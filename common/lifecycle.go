package common

import (
	"sync/atomic"
)

const (
	StatusOrigin int32 = iota
	StatusIniting
	StatusInited
	StatusStarting
	StatusStarted
	StatusStopping
	StatusStopped
)

// LifecycleStatus tracks Init -> Start -> Stop transitions. Each Pre* call
// reports whether the caller won the transition.
type LifecycleStatus struct {
	Status int32
}

func (self *LifecycleStatus) PreInit() bool {
	return atomic.CompareAndSwapInt32(&self.Status, StatusOrigin, StatusIniting)
}
func (self *LifecycleStatus) PostInit() bool {
	return atomic.CompareAndSwapInt32(&self.Status, StatusIniting, StatusInited)
}
func (self *LifecycleStatus) PreStart() bool {
	return atomic.CompareAndSwapInt32(&self.Status, StatusInited, StatusStarting)
}
func (self *LifecycleStatus) PostStart() bool {
	return atomic.CompareAndSwapInt32(&self.Status, StatusStarting, StatusStarted)
}
func (self *LifecycleStatus) PreStop() bool {
	return atomic.CompareAndSwapInt32(&self.Status, StatusStarted, StatusStopping)
}
func (self *LifecycleStatus) PostStop() bool {
	return atomic.CompareAndSwapInt32(&self.Status, StatusStopping, StatusStopped)
}

func (self *LifecycleStatus) Stopped() bool {
	s := self.GetStatus()
	return s == StatusStopped || s == StatusStopping
}
func (self *LifecycleStatus) GetStatus() int32 {
	return atomic.LoadInt32(&self.Status)
}

type Lifecycle interface {
	Init()
	Start()
	Stop()
	GetStatus() int32
}
