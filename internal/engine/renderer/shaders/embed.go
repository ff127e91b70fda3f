// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms the batched scene vertices.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies the directional light to the vertex colour.
//
//go:embed scene.frag
var SceneFragmentShader string
