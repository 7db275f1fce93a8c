// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, confirmation, and file content.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupSkillCmd(t *testing.T, stdin string, skipConfirm bool) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	installSkillCmd.SetOut(&out)
	installSkillCmd.SetIn(strings.NewReader(stdin))
	skillSkipConfirm = skipConfirm
	t.Cleanup(func() {
		installSkillCmd.SetOut(nil)
		installSkillCmd.SetIn(nil)
		skillSkipConfirm = false
	})
	return &out
}

func TestSkillEmbedded(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	text := string(content)
	if !strings.HasPrefix(text, "---\n") {
		t.Error("Expected SKILL.md to start with YAML front matter")
	}
	for _, marker := range []string{"name: mood", "mood add", "save_mood", "çok-mutlu"} {
		if !strings.Contains(text, marker) {
			t.Errorf("SKILL.md missing %q", marker)
		}
	}
}

func TestSkillInstallWithYes(t *testing.T) {
	home := t.TempDir()
	out := setupSkillCmd(t, "", true)

	if err := installSkill(installSkillCmd, home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	path := filepath.Join(home, ".claude", "skills", "mood", "SKILL.md")
	if skillPath(home) != path {
		t.Errorf("skillPath = %q, want %q", skillPath(home), path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	want, _ := skillFS.ReadFile("skill/SKILL.md")
	if !bytes.Equal(got, want) {
		t.Error("Installed skill differs from embedded content")
	}

	info, _ := os.Stat(path)
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Skill file permissions = %o, want 600", perm)
	}
	if !strings.Contains(out.String(), "Installed mood skill successfully") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSkillInstallConfirmed(t *testing.T) {
	home := t.TempDir()
	setupSkillCmd(t, "yes\n", false)

	if err := installSkill(installSkillCmd, home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if _, err := os.Stat(skillPath(home)); err != nil {
		t.Errorf("Skill file not created: %v", err)
	}
}

func TestSkillInstallCanceled(t *testing.T) {
	home := t.TempDir()
	out := setupSkillCmd(t, "n\n", false)

	if err := installSkill(installSkillCmd, home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if _, err := os.Stat(skillPath(home)); !os.IsNotExist(err) {
		t.Error("Skill file written after cancel")
	}
	if !strings.Contains(out.String(), "Installation canceled.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestSkillInstallOverwrites(t *testing.T) {
	home := t.TempDir()
	path := skillPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}

	out := setupSkillCmd(t, "", true)
	if err := installSkill(installSkillCmd, home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	if !strings.Contains(out.String(), "already exists") {
		t.Error("Expected overwrite note")
	}
	got, _ := os.ReadFile(path)
	if string(got) == "old" {
		t.Error("Existing skill was not overwritten")
	}
}
