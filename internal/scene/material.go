package scene

import "github.com/Stella-tan/Embodied-Cognition-Digital-Arboretum/internal/palette"

// Material is how a primitive is shaded.
type Material struct {
	Color             palette.Token `json:"color,omitempty"`
	Emissive          palette.Token `json:"emissive,omitempty"`
	EmissiveIntensity float64       `json:"emissiveIntensity,omitempty"`
	Metalness         float64       `json:"metalness,omitempty"`
	Roughness         float64       `json:"roughness,omitempty"`

	// Opacity only applies when Transparent is set
	Opacity     float64 `json:"opacity,omitempty"`
	Transparent bool    `json:"transparent,omitempty"`

	Wireframe bool `json:"wireframe,omitempty"`
}

// Standard is a matte material.
func Standard(c palette.Token) Material {
	return Material{Color: c, Roughness: 0.5}
}

// Glow is a material that emits its own color.
func Glow(c palette.Token, intensity float64) Material {
	return Material{Color: c, Emissive: c, EmissiveIntensity: intensity, Roughness: 0.3}
}

// Wire is an unlit wireframe material.
func Wire(c palette.Token) Material {
	return Material{Color: c, Wireframe: true}
}

// Faded makes the material see-through.
func (m Material) Faded(opacity float64) Material {
	m.Transparent, m.Opacity = true, opacity
	return m
}

// Metal sets the physical response of the material.
func (m Material) Metal(metalness, roughness float64) Material {
	m.Metalness, m.Roughness = metalness, roughness
	return m
}

// Alpha is the effective opacity of the material.
func (m Material) Alpha() float64 {
	if !m.Transparent {
		return 1
	}
	return m.Opacity
}

// Emit is a material whose glow is a different shade than its surface.
func Emit(c, emissive palette.Token, intensity float64) Material {
	return Material{Color: c, Emissive: emissive, EmissiveIntensity: intensity, Roughness: 0.4}
}
