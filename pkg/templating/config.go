package templating

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/CTAG07/Verseseed/pkg/lexicon"
)

// TemplateConfig holds all configuration options for the templating engine.
type TemplateConfig struct {
	// Templates are the line templates, tried in order when the manager
	// needs a deterministic fallback.
	Templates []string `json:"templates"`
}

// defaultTemplates end in every slot type so that any end word can be placed
// at the end of a line. The last two end in literal text.
var defaultTemplates = []string{
	"The {adj} {noun} will {verb} the {noun}",
	"In {adj} {noun} we {verb} and {verb}",
	"My {noun} is {adj} and {adj}",
	"{pron} {verb} beneath the {adj} {noun}",
	"When {noun} and {noun} {verb} {adv}",
	"Through {adj} {noun} the {noun} will {verb}",
	"Let every {noun} {verb} {prep} {pron}",
	"The {noun} of {noun} grows {adj}",
	"A {adj} {noun} that {pron} {verb} {prep}",
	"Where {adj} {noun} {verb} {prep} the {noun}",
	"O {noun}, {verb} with {pron}",
	"The {noun} {verb} {adv} in the {adj} {noun}",
	"And still the {noun} remains {adv}",
	"{adj} {noun} beneath the sky",
	"We {verb} the {noun} {prep} the night",
}

// DefaultConfig returns a TemplateConfig with the built-in templates.
func DefaultConfig() TemplateConfig {
	return TemplateConfig{Templates: slices.Clone(defaultTemplates)}
}

// Validate checks that there is at least one template and that every slot
// tag names a known part of speech.
func (c TemplateConfig) Validate() error {
	if len(c.Templates) == 0 {
		return ErrNoTemplates
	}
	var errs []error
	for i, tmpl := range c.Templates {
		if strings.TrimSpace(tmpl) == "" {
			errs = append(errs, fmt.Errorf("template %d is empty", i))
			continue
		}
		for _, m := range slotPattern.FindAllStringSubmatch(tmpl, -1) {
			if !knownSlot(lexicon.POS(m[1])) {
				errs = append(errs, fmt.Errorf("template %d: unknown slot {%s}", i, m[1]))
			}
		}
	}
	return errors.Join(errs...)
}

// LoadTemplateFile reads one template per line. Blank lines and lines
// starting with '#' are skipped.
func LoadTemplateFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	var templates []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		templates = append(templates, line)
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return templates, nil
}
