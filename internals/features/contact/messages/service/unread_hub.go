package service

import "sync"

// UnreadHub: pub/sub in-process untuk badge pesan belum dibaca di admin.
// Satu proses, tanpa broker; subscriber lambat tidak memblokir publisher.
type UnreadHub struct {
	mu   sync.Mutex
	subs map[chan int64]struct{}
}

var hub = &UnreadHub{subs: make(map[chan int64]struct{})}

func GetUnreadHub() *UnreadHub { return hub }

func (h *UnreadHub) Subscribe() chan int64 {
	ch := make(chan int64, 8)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *UnreadHub) Unsubscribe(ch chan int64) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *UnreadHub) Publish(count int64) {
	h.mu.Lock()
	for ch := range h.subs {
		select {
		case ch <- count:
		default: // buffer penuh → drop, subscriber akan dapat nilai berikutnya
		}
	}
	h.mu.Unlock()
}
