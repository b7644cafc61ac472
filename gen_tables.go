//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/nl"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const Filename = "tables.yaml"

const Header = `# Name tables and composite patterns per locale. Locales inherit missing
# entries from their parents, en-GB takes its names from en.
# Month and weekday names are generated by gen_tables.go, periods and
# patterns are maintained by hand. Weekdays start on Monday.

`

// Translators supply month and weekday names, periods are kept from the existing file.
var Translators = []locales.Translator{
	en.New(),
	de.New(),
	es.New(),
	fr.New(),
	nl.New(),
}

type Names struct {
	Short []string `yaml:"short,flow"`
	Long  []string `yaml:"long,flow"`
}

type Locale struct {
	Months   *Names            `yaml:"months,omitempty"`
	Weekdays *Names            `yaml:"weekdays,omitempty"`
	Periods  []string          `yaml:"periods,omitempty,flow"`
	Patterns map[string]string `yaml:"patterns,omitempty"`
}

func main() {
	data, err := os.ReadFile(Filename)
	if err != nil {
		panic(err)
	}

	// decode into a node to keep the order of the locales
	root := yaml.Node{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		panic(err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) != 1 || root.Content[0].Kind != yaml.MappingNode {
		panic(fmt.Sprintf("%s: expected a mapping of locales", Filename))
	}
	mapping := root.Content[0]

	for _, tr := range Translators {
		id := language.MustParse(strings.ReplaceAll(tr.Locale(), "_", "-")).String()

		locale := Locale{}
		idx := -1
		for i := 0; i < len(mapping.Content); i += 2 {
			if mapping.Content[i].Value == id {
				idx = i + 1
				if err := mapping.Content[idx].Decode(&locale); err != nil {
					panic(fmt.Sprintf("%s: %v", id, err))
				}
				break
			}
		}

		locale.Months = &Names{
			Short: tr.MonthsAbbreviated()[1:],
			Long:  tr.MonthsWide()[1:],
		}
		locale.Weekdays = &Names{}
		for i := 1; i <= 7; i++ {
			weekday := time.Weekday(i % 7)
			locale.Weekdays.Short = append(locale.Weekdays.Short, tr.WeekdayAbbreviated(weekday))
			locale.Weekdays.Long = append(locale.Weekdays.Long, tr.WeekdayWide(weekday))
		}

		node := yaml.Node{}
		if err := node.Encode(locale); err != nil {
			panic(err)
		}
		if idx == -1 {
			mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: id}, &node)
		} else {
			mapping.Content[idx] = &node
		}
		fmt.Println(id)
	}

	buf := &bytes.Buffer{}
	buf.WriteString(Header)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		panic(err)
	}
	if err := enc.Close(); err != nil {
		panic(err)
	}
	if err := os.WriteFile(Filename, buf.Bytes(), 0644); err != nil {
		panic(err)
	}
}
