package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots the default shader reserves.
const MaxLights = 8

// Light mode indices as the shader sees them.
const (
	shaderLightDirectional int32 = 0
	shaderLightAmbient     int32 = 1
	shaderLightHemisphere  int32 = 2
	shaderLightPoint       int32 = 3
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) IsValid() bool {
	return shader.vertexSource != "" && shader.fragmentSource != ""
}

func (shader *Shader) Program() uint32 {
	return shader.program
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform3f(location, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1f(location, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1i(location, value)
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture Coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 viewProjection;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(model) * inNormal; // Valid while the model matrix has no non-uniform scaling
    fragTexCoord = inTexCoord;

    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}

` + "\x00"

var fragmentShaderSource = `// Fragment Shader
#version 330 core
in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

struct Light {
    vec3 position;
    vec3 direction;
    vec3 color;
    vec3 groundColor;   // hemisphere only
    float intensity;
    int mode;           // 0 directional, 1 ambient, 2 hemisphere, 3 point
    float constantAtten;
    float linearAtten;
    float quadraticAtten;
};

uniform Light lights[8];
uniform int lightCount;
uniform vec3 viewPos;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float alpha;

out vec4 FragColor;

vec3 shade(Light light, vec3 norm, vec3 viewDir) {
    if (light.mode == 1) {
        // Ambient: flat term, no orientation
        return light.color * light.intensity * diffuseColor;
    }
    if (light.mode == 2) {
        // Hemisphere: blend sky and ground color by how far the normal
        // points up
        float w = norm.y * 0.5 + 0.5;
        vec3 hemi = mix(light.groundColor, light.color, w);
        return hemi * light.intensity * diffuseColor;
    }

    vec3 lightDir;
    float attenuation = 1.0;
    if (light.mode == 0) {
        lightDir = normalize(-light.direction);
    } else {
        lightDir = normalize(light.position - FragPos);
        float dist = length(light.position - FragPos);
        attenuation = 1.0 / (light.constantAtten + light.linearAtten * dist +
                             light.quadraticAtten * dist * dist);
    }

    float diff = max(dot(norm, lightDir), 0.0);
    vec3 diffuse = diff * light.color * diffuseColor;

    vec3 reflectDir = reflect(-lightDir, norm);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), shininess);
    vec3 specular = spec * light.color * specularColor;

    return (diffuse + specular) * light.intensity * attenuation;
}

void main() {
    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);

    vec3 result = vec3(0.0);
    for (int i = 0; i < lightCount && i < 8; i++) {
        result += shade(lights[i], norm, viewDir);
    }

    FragColor = vec4(result, alpha);
}
` + "\x00"

func InitShader() Shader {
	return Shader{
		vertexSource:   vertexShaderSource,
		fragmentSource: fragmentShaderSource,
	}
}
