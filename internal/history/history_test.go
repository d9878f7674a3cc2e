package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cyberbull/startupdocs/internal/document"
)

func sampleDoc(docType, content string) document.GeneratedDocument {
	return document.GeneratedDocument{
		DocumentType: docType,
		Content:      content,
		CreatedAt:    time.Now(),
	}
}

func TestMemoryAppendOrder(t *testing.T) {
	m := NewMemory()
	for _, c := range []string{"first", "second", "third"} {
		if err := m.Append(sampleDoc("business_plan", c)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	docs, err := m.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, want := range []string{"first", "second", "third"} {
		if docs[i].Content != want {
			t.Fatalf("docs[%d].Content = %q, want %q", i, docs[i].Content, want)
		}
	}

	n, err := m.Len()
	if err != nil || n != 3 {
		t.Fatalf("Len = (%d, %v), want 3", n, err)
	}
}

func TestMemoryListReturnsCopy(t *testing.T) {
	m := NewMemory()
	if err := m.Append(sampleDoc("pitch_deck", "original")); err != nil {
		t.Fatalf("append: %v", err)
	}
	docs, _ := m.List()
	docs[0].Content = "mutated"

	again, _ := m.List()
	if again[0].Content != "original" {
		t.Fatalf("store contents were mutated through the returned slice")
	}
}

func TestSQLiteAppendAndList(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	s := db.Session("s1")
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := s.Append(document.GeneratedDocument{
		DocumentType: "pitch_deck",
		Content:      "deck body",
		CreatedAt:    created,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	docs, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0].DocumentType != "pitch_deck" || docs[0].Content != "deck body" {
		t.Fatalf("unexpected document: %+v", docs[0])
	}
	if !docs[0].CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", docs[0].CreatedAt, created)
	}
}

func TestSQLiteSessionIsolation(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	a := db.Session("alpha")
	b := db.Session("beta")
	if err := a.Append(sampleDoc("business_plan", "alpha doc")); err != nil {
		t.Fatalf("append alpha: %v", err)
	}
	if err := a.Append(sampleDoc("business_plan", "alpha doc 2")); err != nil {
		t.Fatalf("append alpha: %v", err)
	}
	if err := b.Append(sampleDoc("pitch_deck", "beta doc")); err != nil {
		t.Fatalf("append beta: %v", err)
	}

	an, _ := a.Len()
	bn, _ := b.Len()
	if an != 2 || bn != 1 {
		t.Fatalf("Len alpha=%d beta=%d, want 2 and 1", an, bn)
	}

	bdocs, err := b.List()
	if err != nil {
		t.Fatalf("list beta: %v", err)
	}
	if len(bdocs) != 1 || bdocs[0].Content != "beta doc" {
		t.Fatalf("beta saw foreign rows: %+v", bdocs)
	}
}
