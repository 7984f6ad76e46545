package course

import (
	"promptlab/internal/prompt"
)

// Module is one lesson of the course.
type Module struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// Feature is a tool highlighted on the landing page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Option is a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var modules = []Module{
	{1, "Welcome to Midjourney!", "Learn the basics of AI art generation", []string{"What is Midjourney?", "Basic prompting", "Community guidelines"}},
	{2, "The Power of Words", "Master advanced prompt engineering", []string{"Descriptive language", "Parameters", "Multi-prompts", "Negative prompting"}},
	{3, "3D Pixar Style", "Create charming animated characters", []string{"Pixar characteristics", "Character design", "Emotions and poses"}},
	{4, "Photorealism", "Generate lifelike images", []string{"Realism techniques", "Camera terms", "Lighting control"}},
	{5, "Watercolor Art", "Create beautiful flowing artwork", []string{"Watercolor characteristics", "Artistic elements", "Soft techniques"}},
	{6, "Fine-Tuning Styles", "Blend styles and develop your voice", []string{"Style blending", "Iteration", "Personal style"}},
}

var features = []Feature{
	{"Interactive Prompt Builder", "Build perfect Midjourney prompts with our step-by-step tool"},
	{"Prompt Analyzer", "Analyze existing prompts to understand their components"},
	{"Interactive Quizzes", "Test your knowledge with module-based quizzes"},
	{"Student Gallery", "Share your creations and get inspired by others"},
}

var styleLabels = []struct {
	style prompt.Style
	label string
}{
	{prompt.Style3DPixar, "3D Pixar Style"},
	{prompt.StylePhotorealistic, "Photorealistic"},
	{prompt.StyleWatercolor, "Watercolor"},
	{prompt.StyleAnime, "Anime"},
	{prompt.StyleOilPainting, "Oil Painting"},
	{prompt.StyleDigitalArt, "Digital Art"},
}

var lightingOptions = []string{
	"golden hour lighting",
	"dramatic chiaroscuro lighting",
	"soft diffused light",
	"neon glow",
	"backlit",
	"studio lighting",
	"natural light",
	"cinematic lighting",
}

var aspectRatioOptions = []Option{
	{"1:1", "1:1 (Square)"},
	{"3:2", "3:2 (Photo)"},
	{"16:9", "16:9 (Widescreen)"},
	{"2:3", "2:3 (Portrait)"},
}

var versionOptions = []string{"5.2", "6", "6.1"}

var qualityOptions = []string{"0.25", "0.5", "1", "2"}

var examplePrompts = []string{
	"/imagine prompt a majestic dragon perched on a mountain peak, 3D Pixar style, golden hour lighting, cinematic shot --ar 16:9 --s 300",
	"/imagine prompt a cozy coffee shop interior, photorealistic, warm lighting, steam rising from coffee cup, bokeh background --ar 4:3 --v 5.2",
	"/imagine prompt a cute robot holding a flower, watercolor painting, soft pastel colors, dreamy atmosphere --ar 1:1 --s 400",
}

// Modules returns the course modules in order.
func Modules() []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		out[i] = cloneModule(m)
	}
	return out
}

// ModuleByNumber looks up a module by its number.
func ModuleByNumber(number int) (Module, bool) {
	for _, m := range modules {
		if m.Number == number {
			return cloneModule(m), true
		}
	}
	return Module{}, false
}

func Features() []Feature {
	return append([]Feature(nil), features...)
}

// StyleOptions lists the builder art styles.
func StyleOptions() []Option {
	out := make([]Option, 0, len(styleLabels))
	for _, s := range styleLabels {
		out = append(out, Option{Value: string(s.style), Label: s.label})
	}
	return out
}

// LightingOptions lists the builder lighting presets. Value and label match.
func LightingOptions() []Option {
	return plainOptions(lightingOptions)
}

func AspectRatioOptions() []Option {
	return append([]Option(nil), aspectRatioOptions...)
}

func VersionOptions() []Option {
	return plainOptions(versionOptions)
}

func QualityOptions() []Option {
	return plainOptions(qualityOptions)
}

// ExamplePrompts returns sample prompts for the analyzer.
func ExamplePrompts() []string {
	return append([]string(nil), examplePrompts...)
}

func plainOptions(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

func cloneModule(m Module) Module {
	m.Topics = append([]string(nil), m.Topics...)
	return m
}
