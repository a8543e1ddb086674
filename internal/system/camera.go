package system

// ZoomIn and ZoomOut are the only tokens CameraZoom acts on.
const (
	ZoomIn  = "in"
	ZoomOut = "out"
)

func moveCamera(s State, a CameraMove) State {
	s.Camera.Offset = s.Camera.Offset.Add(a.Dir)
	return s
}

func zoomCamera(s State, a CameraZoom) State {
	switch a.InOrOut {
	case ZoomIn:
		s.Camera.Zoom++
	case ZoomOut:
		s.Camera.Zoom--
	}
	return s
}
