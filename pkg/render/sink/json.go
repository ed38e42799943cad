package sink

import (
	"encoding/json"

	"github.com/matzehuels/ringlayout/pkg/render"
)

// RenderJSON renders the scene as indented JSON.
func RenderJSON(s render.Scene) ([]byte, error) {
	if s.Items == nil {
		s.Items = []render.Item{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ReadJSON decodes a scene written by [RenderJSON].
func ReadJSON(data []byte) (render.Scene, error) {
	var s render.Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return render.Scene{}, err
	}
	return s, nil
}
