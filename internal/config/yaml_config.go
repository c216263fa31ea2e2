package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LandingConfig represents the structure of the landing page YAML file.
// Marketing copy is easier to manage in YAML than env vars.
type LandingConfig struct {
	Badge        string          `yaml:"badge"`
	Headline     string          `yaml:"headline"`
	Subtitle     string          `yaml:"subtitle"`
	CTALabel     string          `yaml:"cta_label"`
	CTAHover     string          `yaml:"cta_hover_label"`
	Features     []FeatureConfig `yaml:"features"`
	TechStack    []string        `yaml:"tech_stack"`
	WidgetTitle  string          `yaml:"widget_title"`
	WidgetSub    string          `yaml:"widget_subtitle"`
	Placeholder  string          `yaml:"placeholder"`
	PendingLabel string          `yaml:"pending_label"`
	ResetLabel   string          `yaml:"reset_label"`
}

// FeatureConfig defines one feature card on the landing page.
type FeatureConfig struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultLanding returns the built-in landing page content.
func DefaultLanding() *LandingConfig {
	return &LandingConfig{
		Badge:    "AI-Powered Health Intelligence",
		Headline: "See Your Future Self",
		Subtitle: "Multi-agent AI system analyzing genomics, nutrition, and wearables " +
			"to predict and optimize your longevity trajectory",
		CTALabel: "✨ Explore Demo",
		CTAHover: "🚀 Coming Soon",
		Features: []FeatureConfig{
			{Icon: "brain", Title: "Multi-Agent AI", Description: "5 specialized agents processing vision, genomics, and research data"},
			{Icon: "activity", Title: "Predictive Twin", Description: "10-year health trajectory simulation based on lifestyle interventions"},
			{Icon: "heart", Title: "Personalized Insights", Description: "Evidence-based recommendations from 10,000+ clinical studies"},
		},
		TechStack:    []string{"Go", "Fiber", "HTMX", "Prometheus", "Bubble Tea", "Redis"},
		WidgetTitle:  "Food Search Agent",
		WidgetSub:    "AI-Powered Nutrition Database",
		Placeholder:  "Search any food... (e.g., 'salmon', 'banana', 'oatmeal')",
		PendingLabel: "Analyzing nutrition data...",
		ResetLabel:   "Search Another Food",
	}
}

// LoadLandingConfig loads the landing page YAML file from path.
// Missing files and empty fields fall back to DefaultLanding.
func LoadLandingConfig(path string) (*LandingConfig, error) {
	cfg := DefaultLanding()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Landing file is optional
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read landing file: %w", err)
	}

	var file LandingConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse landing file %s: %w", path, err)
	}

	cfg.merge(&file)
	return cfg, nil
}

// merge overrides c with every non-empty field of o.
func (c *LandingConfig) merge(o *LandingConfig) {
	setIf := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	setIf(&c.Badge, o.Badge)
	setIf(&c.Headline, o.Headline)
	setIf(&c.Subtitle, o.Subtitle)
	setIf(&c.CTALabel, o.CTALabel)
	setIf(&c.CTAHover, o.CTAHover)
	setIf(&c.WidgetTitle, o.WidgetTitle)
	setIf(&c.WidgetSub, o.WidgetSub)
	setIf(&c.Placeholder, o.Placeholder)
	setIf(&c.PendingLabel, o.PendingLabel)
	setIf(&c.ResetLabel, o.ResetLabel)
	if len(o.Features) > 0 {
		c.Features = o.Features
	}
	if len(o.TechStack) > 0 {
		c.TechStack = o.TechStack
	}
}
