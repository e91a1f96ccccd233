package players

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/wanwish/rainy-words/internal/words"
)

func TestAdd_CleansName(t *testing.T) {
	s := NewStore()

	p := s.Add("p1", "", words.ModeNormal, 3)
	if p.Name != "Player" {
		t.Errorf("blank name = %q, want %q", p.Name, "Player")
	}

	long := strings.Repeat("x", 30)
	p2 := s.Add("p2", long, words.ModeNormal, 3)
	if len(p2.Name) != MaxNameLen {
		t.Errorf("name length = %d, want %d", len(p2.Name), MaxNameLen)
	}
}

func TestAdd_Idempotent(t *testing.T) {
	s := NewStore()
	s.Add("p1", "Alice", words.ModeNormal, 3)
	s.Add("p1", "Other", words.ModeNormal, 3)

	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
	if got := s.Get("p1").Name; got != "Alice" {
		t.Errorf("name = %q, want the first registration kept", got)
	}
}

func TestGetList_JoinOrder(t *testing.T) {
	s := NewStore()
	s.Add("p1", "Alice", words.ModeNormal, 3)
	s.Add("p2", "Bob", words.ModeNormal, 3)
	s.Add("p3", "Carol", words.ModeNormal, 3)
	s.Remove("p2")
	s.Add("p4", "Dave", words.ModeNormal, 3)

	list := s.GetList()
	want := []string{"Alice", "Carol", "Dave"}
	if len(list) != len(want) {
		t.Fatalf("list length = %d, want %d", len(list), len(want))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Name, name)
		}
	}
}

func TestUpdateScore(t *testing.T) {
	s := NewStore()
	s.Add("p1", "Alice", words.ModeNormal, 3)

	if p := s.UpdateScore("p1", 2); p.Score != 2 {
		t.Errorf("score = %d, want 2", p.Score)
	}
	if p := s.UpdateScore("p1", 1); p.Score != 3 {
		t.Errorf("score = %d, want 3", p.Score)
	}
	if p := s.UpdateScore("ghost", 1); p != nil {
		t.Error("UpdateScore on unknown id should return nil")
	}
}

func TestRanked_TieBreaksByJoinOrder(t *testing.T) {
	s := NewStore()
	s.Add("p1", "Alice", words.ModeNormal, 3)
	s.Add("p2", "Bob", words.ModeNormal, 3)
	s.Add("p3", "Carol", words.ModeNormal, 3)
	s.UpdateScore("p2", 5)
	s.UpdateScore("p3", 5)
	s.UpdateScore("p1", 2)

	ranked := s.Ranked()
	want := []string{"Bob", "Carol", "Alice"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Name, name)
		}
	}
}

func TestResetScores(t *testing.T) {
	s := NewStore()
	s.Add("p1", "Alice", words.ModeNormal, 3)
	s.UpdateScore("p1", 7)
	s.ResetScores()

	if got := s.Get("p1").Score; got != 0 {
		t.Errorf("score after reset = %d, want 0", got)
	}
}

func TestCleanName(t *testing.T) {
	if got := CleanName("Alice"); got != "Alice" {
		t.Errorf("CleanName(Alice) = %q", got)
	}
	if got := CleanName(""); got != "Player" {
		t.Errorf("CleanName(empty) = %q, want Player", got)
	}
	long := strings.Repeat("a", MaxNameLen+5)
	if got := CleanName(long); got != long[:MaxNameLen] {
		t.Errorf("CleanName(long) = %q, want %d chars", got, MaxNameLen)
	}
}

func TestCleanName_MultibyteTruncation(t *testing.T) {
	name := strings.Repeat("ü", MaxNameLen+3)
	got := CleanName(name)
	if !utf8.ValidString(got) {
		t.Fatalf("CleanName(%q) = %q, not valid UTF-8", name, got)
	}
	if n := utf8.RuneCountInString(got); n != MaxNameLen {
		t.Errorf("rune count = %d, want %d", n, MaxNameLen)
	}
}
