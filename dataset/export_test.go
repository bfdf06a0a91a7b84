package dataset

import "sync"

func resetShared() {
	sharedOnce = sync.Once{}
	sharedLoader = nil
}
