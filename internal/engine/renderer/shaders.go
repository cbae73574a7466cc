package renderer

const meshVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vViewPos;

void main() {
    vec4 viewPos = uView * uModel * vec4(aPosition, 1.0);
    vNormal = mat3(uView) * mat3(uModel) * aNormal;
    vViewPos = viewPos.xyz;
    gl_Position = uProjection * viewPos;
}
`

// Blinn-Phong with shininess from roughness; metalness tints the highlight
// with the base color and darkens the diffuse term.
const meshFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vViewPos;

uniform vec3 uColor;
uniform float uRoughness;
uniform float uMetalness;
uniform vec3 uLightDir;
uniform vec3 uLightColor;
uniform float uAmbient;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    if (!gl_FrontFacing) {
        n = -n;
    }
    vec3 l = normalize(uLightDir);
    vec3 v = normalize(-vViewPos);
    vec3 h = normalize(l + v);

    float diff = max(dot(n, l), 0.0);
    float shininess = mix(128.0, 4.0, clamp(uRoughness, 0.0, 1.0));
    float spec = pow(max(dot(n, h), 0.0), shininess) * (1.0 - uRoughness * 0.7);

    vec3 specColor = mix(vec3(0.04), uColor, uMetalness);
    vec3 diffuse = uColor * (1.0 - uMetalness) * diff;
    vec3 ambient = uColor * uAmbient;

    FragColor = vec4(ambient + (diffuse + specColor * spec) * uLightColor, 1.0);
}
`

const lineVertexShader = `#version 410 core
layout (location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

void main() {
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `#version 410 core
uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
`
