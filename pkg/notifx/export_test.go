package notifx

func resetGlobal() {
	global.mu.Lock()
	global.client = nil
	global.mu.Unlock()
}
