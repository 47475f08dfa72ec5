package config

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/lvim-tech/envlauncher/pkg/terminal"
)

// Settings manages envlauncher settings stored in the desktop entry file
// used to launch the application (the ".desktop" file), per the Desktop
// Entry Specification version 1.5.
//
// The file is owned by the desktop shell, so edits must round-trip
// byte-for-byte: comments, blank lines, key order, and key case are all
// preserved. That rules out generic INI mappers; the file is kept as raw
// lines and edited in place.
//
// See: https://specifications.freedesktop.org/desktop-entry-spec/
type Settings struct {
	lines           []string
	terminalChoices []string
	rcfile          string
	banner          string
	nextVenv        int
}

const (
	// Ако desktop entry файлът доближава 128 kB, нещо не е наред.
	maxSettingsSize = 128 * 1024

	entrySection   = "Desktop Entry"
	optionsSection = "X-EnvLauncher Options"
	venvPrefix     = "venv"

	appDataSubdir = "envlauncher"
)

var actionExecPattern = regexp.MustCompile(`^envlauncher --activate "(.+)" --directory "(.+)"$`)

// Action е един virtual-environment launcher запис в desktop менюто
type Action struct {
	Identifier string
	Name       string
	Activate   string
	Directory  string
}

// LoadSettings чете desktop entry файл от path
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSettings(f)
}

// ParseSettingsString parses desktop entry content from a string.
func ParseSettingsString(content string) (*Settings, error) {
	return ParseSettings(strings.NewReader(content))
}

// ParseSettings чете desktop entry съдържание от reader
func ParseSettings(r io.Reader) (*Settings, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSettingsSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSettingsSize {
		return nil, fmt.Errorf("desktop entry file exceeds 128 kB")
	}

	s := &Settings{
		lines:           strings.Split(string(data), "\n"),
		terminalChoices: terminal.Detect(),
		nextVenv:        1,
	}
	s.rcfile = s.get(optionsSection, "Rcfile")
	s.banner = s.get(optionsSection, "Banner")
	if s.banner == "" {
		s.banner = "color"
	}
	return s, nil
}

// ExportString returns the file content with all untouched lines intact
// and a single trailing newline.
func (s *Settings) ExportString() string {
	return strings.TrimSpace(strings.Join(s.lines, "\n")) + "\n"
}

// Save записва настройките обратно във файла
func (s *Settings) Save(path string) error {
	return os.WriteFile(path, []byte(s.ExportString()), 0644)
}

// ============================================================================
// Line-level accessors
// ============================================================================

func isSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

func sectionName(line string) string {
	trimmed := strings.TrimSpace(line)
	return strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
}

// sectionRange returns the line index just past the section header and
// the exclusive end of the section body (the next header or EOF).
// Returns (-1, -1) when the section does not exist.
func (s *Settings) sectionRange(name string) (int, int) {
	start := -1
	for i, line := range s.lines {
		if !isSectionHeader(line) {
			continue
		}
		if start >= 0 {
			return start, i
		}
		if sectionName(line) == name {
			start = i + 1
		}
	}
	if start >= 0 {
		return start, len(s.lines)
	}
	return -1, -1
}

// sections връща имената на всички секции по ред
func (s *Settings) sections() []string {
	var names []string
	for _, line := range s.lines {
		if isSectionHeader(line) {
			names = append(names, sectionName(line))
		}
	}
	return names
}

func splitOption(line string) (key, value string, ok bool) {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return "", "", false
	}
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// get връща стойността на option в section (или "")
func (s *Settings) get(section, option string) string {
	start, end := s.sectionRange(section)
	if start < 0 {
		return ""
	}
	for _, line := range s.lines[start:end] {
		if key, value, ok := splitOption(line); ok && key == option {
			return value
		}
	}
	return ""
}

// set записва option=value в section, като запазва всичко останало
func (s *Settings) set(section, option, value string) {
	start, end := s.sectionRange(section)
	if start < 0 {
		// Нова секция в края на файла
		s.lines = append(s.lines, "", "["+section+"]", option+"="+value)
		return
	}

	for i := start; i < end; i++ {
		if key, _, ok := splitOption(s.lines[i]); ok && key == option {
			s.lines[i] = option + "=" + value
			return
		}
	}

	// Insert after the last non-blank line so section separators stay put.
	insert := start
	for i := start; i < end; i++ {
		if strings.TrimSpace(s.lines[i]) != "" {
			insert = i + 1
		}
	}
	s.lines = append(s.lines[:insert], append([]string{option + "=" + value}, s.lines[insert:]...)...)
}

// deleteSection премахва секция заедно с header-а ѝ
func (s *Settings) deleteSection(name string) {
	for i, line := range s.lines {
		if isSectionHeader(line) && sectionName(line) == name {
			end := len(s.lines)
			for j := i + 1; j < len(s.lines); j++ {
				if isSectionHeader(s.lines[j]) {
					end = j
					break
				}
			}
			s.lines = append(s.lines[:i], s.lines[end:]...)
			return
		}
	}
}

// ============================================================================
// Option accessors
// ============================================================================

// Rcfile is an "rc" file to execute after activating the environment
// (e.g. ~/.bashrc).
func (s *Settings) Rcfile() string {
	return s.rcfile
}

// SetRcfile задава rc файла
func (s *Settings) SetRcfile(value string) {
	s.rcfile = value
	s.set(optionsSection, "Rcfile", value)
}

// Banner returns the banner option: "color", "plain" or "none".
func (s *Settings) Banner() string {
	return s.banner
}

// SetBanner задава banner option; невалидна стойност става "color"
func (s *Settings) SetBanner(value string) {
	if value != "color" && value != "plain" && value != "none" {
		value = "color"
	}
	s.banner = value
	s.set(optionsSection, "Banner", value)
}

// BannerResource returns the data subdirectory and filename of the banner
// file, or ok=false when banners are disabled.
func (s *Settings) BannerResource() (subdir, filename string, ok bool) {
	switch s.banner {
	case "color":
		return appDataSubdir, "banner-color.ascii", true
	case "plain":
		return appDataSubdir, "banner-plain.ascii", true
	default:
		return "", "", false
	}
}

// TerminalEmulatorChoices връща наличните terminal emulators
func (s *Settings) TerminalEmulatorChoices() []string {
	return s.terminalChoices
}

// TerminalEmulator returns the configured terminal emulator when it is
// installed, otherwise the first available one.
func (s *Settings) TerminalEmulator() string {
	value := s.get(optionsSection, "TerminalEmulator")
	for _, choice := range s.terminalChoices {
		if value == choice {
			return value
		}
	}
	if len(s.terminalChoices) > 0 {
		return s.terminalChoices[0]
	}
	return ""
}

// SetTerminalEmulator задава предпочитания terminal emulator
func (s *Settings) SetTerminalEmulator(value string) {
	s.set(optionsSection, "TerminalEmulator", value)
}

// ============================================================================
// Venv launcher actions
// ============================================================================

// actionIdentifiers returns the identifiers from the Desktop Entry
// Actions key, in file order.
func (s *Settings) actionIdentifiers() []string {
	value := strings.TrimSuffix(s.get(entrySection, "Actions"), ";")
	var identifiers []string
	for _, ident := range strings.Split(value, ";") {
		if ident = strings.TrimSpace(ident); ident != "" {
			identifiers = append(identifiers, ident)
		}
	}
	return identifiers
}

// MakeIdentifier генерира нов, неизползван action identifier
func (s *Settings) MakeIdentifier() string {
	existing := make(map[string]bool)
	for _, ident := range s.actionIdentifiers() {
		if strings.HasPrefix(ident, venvPrefix) {
			existing[ident] = true
		}
	}

	candidate := fmt.Sprintf("%s%d", venvPrefix, s.nextVenv)
	s.nextVenv++
	for existing[candidate] {
		candidate = fmt.Sprintf("%s%d", venvPrefix, s.nextVenv)
		s.nextVenv++
	}
	return candidate
}

// Actions returns the virtual environment launcher actions in the order
// given by the Desktop Entry Actions key.
func (s *Settings) Actions() []Action {
	actionData := make(map[string]Action)
	for _, section := range s.sections() {
		ident, ok := strings.CutPrefix(section, "Desktop Action ")
		if !ok || !strings.HasPrefix(ident, venvPrefix) {
			continue
		}
		match := actionExecPattern.FindStringSubmatch(s.get(section, "Exec"))
		if match == nil {
			continue
		}
		actionData[ident] = Action{
			Identifier: ident,
			Name:       s.get(section, "Name"),
			Activate:   match[1],
			Directory:  match[2],
		}
	}

	var actions []Action
	for _, ident := range s.actionIdentifiers() {
		if action, ok := actionData[ident]; ok {
			actions = append(actions, action)
		}
	}
	return actions
}

// SetActions replaces all existing venv launcher actions with the given
// list. Non-venv actions (like "Configure") keep their place after the
// venv entries.
func (s *Settings) SetActions(actions []Action) {
	// Премахни старите venv секции
	for _, section := range s.sections() {
		ident, ok := strings.CutPrefix(section, "Desktop Action ")
		if ok && strings.HasPrefix(ident, venvPrefix) {
			s.deleteSection(section)
		}
	}

	var venvIdentifiers []string
	for _, action := range actions {
		section := "Desktop Action " + action.Identifier
		s.set(section, "Name", strings.TrimSpace(action.Name))
		s.set(section, "Exec", fmt.Sprintf(
			`envlauncher --activate "%s" --directory "%s"`,
			action.Activate, action.Directory))
		venvIdentifiers = append(venvIdentifiers, action.Identifier)
	}

	var otherIdentifiers []string
	for _, ident := range s.actionIdentifiers() {
		if !strings.HasPrefix(ident, venvPrefix) {
			otherIdentifiers = append(otherIdentifiers, ident)
		}
	}

	value := strings.Join(append(venvIdentifiers, otherIdentifiers...), ";")
	s.set(entrySection, "Actions", value+";")
}
