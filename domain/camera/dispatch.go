package camera

// multiHandler fans one detection stream out to several handlers in order.
type multiHandler []DetectionHandler

func (m multiHandler) OnDetection(d Detection) {
	for _, h := range m {
		if h != nil {
			h.OnDetection(d)
		}
	}
}

// MultiHandler combines handlers into one. Delivery order follows argument
// order on every frame.
func MultiHandler(handlers ...DetectionHandler) DetectionHandler {
	return multiHandler(handlers)
}
