package content

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Store reads and writes the markdown documents backing each entity list.
// Every document is YAML frontmatter holding `items:` followed by a free-text
// body that mutations must leave untouched. Writers of the same document are
// serialized by a per-document lock; the cross-process lost-update hazard of
// whole-file rewrites remains.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".md")
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

type listDoc[T any] struct {
	Items []T `yaml:"items"`
}

// ReadList parses the named document into its item list. A missing or corrupt
// document reads as an empty list: the condition is logged, never surfaced.
func ReadList[T any](s *Store, name string) []T {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		log.Printf("content: reading %s: %v", name, err)
		return nil
	}

	front, _ := splitFrontmatter(raw)

	var doc listDoc[T]
	if err := yaml.Unmarshal(front, &doc); err != nil {
		log.Printf("content: parsing %s: %v", name, err)
		return nil
	}
	return doc.Items
}

// WriteList serializes items back into the document's frontmatter, preserving
// the current body verbatim.
func WriteList[T any](s *Store, name string, items []T) error {
	body := ""
	if raw, err := os.ReadFile(s.path(name)); err == nil {
		_, body = splitFrontmatter(raw)
	}

	front, err := yaml.Marshal(listDoc[T]{Items: items})
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}

	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.Write(front)
	b.WriteString(delimiter + "\n")
	b.WriteString(body)

	if err := os.WriteFile(s.path(name), []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Mutate applies fn to the current item list and persists the result, holding
// the document's lock across the whole read-modify-write cycle.
func Mutate[T any](s *Store, name string, fn func([]T) ([]T, error)) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	items, err := fn(ReadList[T](s, name))
	if err != nil {
		return err
	}
	return WriteList(s, name, items)
}

// ReadBody returns the free-text body of the named document.
func (s *Store) ReadBody(name string) (string, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	_, body := splitFrontmatter(raw)
	return body, nil
}

// Section is one horizontal-rule-delimited slice of a narrative document.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var rulePattern = regexp.MustCompile(`(?m)^---\s*$`)

// Sections splits a narrative document on horizontal rules. A segment that is
// a bare YAML mapping with a title names the segment that follows it;
// segments without one fall back to "Untitled".
func (s *Store) Sections(name string) ([]Section, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var parts []string
	for _, p := range rulePattern.Split(string(raw), -1) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}

	var sections []Section
	for i := 0; i < len(parts); i++ {
		var meta struct {
			Title string `yaml:"title"`
		}
		if err := yaml.Unmarshal([]byte(parts[i]), &meta); err == nil && meta.Title != "" {
			content := ""
			if i+1 < len(parts) {
				content = strings.TrimSpace(parts[i+1])
				i++
			}
			sections = append(sections, Section{Title: meta.Title, Content: content})
			continue
		}
		sections = append(sections, Section{Title: "Untitled", Content: strings.TrimSpace(parts[i])})
	}
	return sections, nil
}

// splitFrontmatter separates the YAML metadata block from the body. Content
// without a leading delimiter is all body.
func splitFrontmatter(raw []byte) ([]byte, string) {
	text := string(raw)
	if !strings.HasPrefix(text, delimiter+"\n") && text != delimiter {
		return nil, text
	}

	rest := strings.TrimPrefix(text, delimiter+"\n")
	if idx := strings.Index(rest, "\n"+delimiter+"\n"); idx >= 0 {
		return []byte(rest[:idx]), rest[idx+len("\n"+delimiter+"\n"):]
	}
	if trimmed, ok := strings.CutSuffix(rest, "\n"+delimiter); ok {
		return []byte(trimmed), ""
	}
	return []byte(rest), ""
}
