package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/song-of-the-week/models"
)

func sevenSongs() []models.Song {
	return []models.Song{
		{ID: "mon", Title: "Monday", Artist: "A"},
		{ID: "tue", Title: "Tuesday", Artist: "B"},
		{ID: "wed", Title: "Wednesday", Artist: "C"},
		{ID: "thu", Title: "Thursday", Artist: "D"},
		{ID: "fri", Title: "Friday", Artist: "E"},
		{ID: "sat", Title: "Saturday", Artist: "F"},
		{ID: "sun", Title: "Sunday", Artist: "G"},
	}
}

func TestNew(t *testing.T) {
	cat, err := New(sevenSongs())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	song, ok := cat.ByDay(1)
	if !ok || song.ID != "mon" {
		t.Errorf("ByDay(1) = %+v, expected monday song", song)
	}
	song, ok = cat.ByDay(7)
	if !ok || song.ID != "sun" {
		t.Errorf("ByDay(7) = %+v, expected sunday song", song)
	}
}

func TestNewRejectsWrongCount(t *testing.T) {
	_, err := New(sevenSongs()[:5])
	if err == nil {
		t.Fatal("expected error for 5 songs")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	songs := sevenSongs()
	songs[3].ID = songs[0].ID

	_, err := New(songs)
	if err == nil {
		t.Fatal("expected error for duplicate song id")
	}
}

func TestByDayOutOfRange(t *testing.T) {
	cat, _ := New(sevenSongs())

	if _, ok := cat.ByDay(0); ok {
		t.Error("ByDay(0) should report absence")
	}
	if _, ok := cat.ByDay(8); ok {
		t.Error("ByDay(8) should report absence")
	}
}

func TestByID(t *testing.T) {
	cat, _ := New(sevenSongs())

	song, ok := cat.ByID("fri")
	if !ok || song.Title != "Friday" {
		t.Errorf("ByID(fri) = %+v, %v", song, ok)
	}
	if _, ok := cat.ByID("nope"); ok {
		t.Error("ByID(nope) should report absence")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	data := `{"songs":[
		{"id":"mon","title":"Monday","artist":"A","embedUrl":"https://example.com/1"},
		{"id":"tue","title":"Tuesday","artist":"B","embedUrl":"https://example.com/2"},
		{"id":"wed","title":"Wednesday","artist":"C","embedUrl":"https://example.com/3"},
		{"id":"thu","title":"Thursday","artist":"D","embedUrl":"https://example.com/4"},
		{"id":"fri","title":"Friday","artist":"E","embedUrl":"https://example.com/5"},
		{"id":"sat","title":"Saturday","artist":"F","embedUrl":"https://example.com/6"},
		{"id":"sun","title":"Sunday","artist":"G","embedUrl":"https://example.com/7"}
	]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	song, ok := cat.ByDay(3)
	if !ok || song.ID != "wed" {
		t.Errorf("ByDay(3) = %+v, expected wednesday song", song)
	}
	if song.EmbedURL != "https://example.com/3" {
		t.Errorf("embedUrl not parsed: %+v", song)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.json")
	os.WriteFile(path, []byte("{not json"), 0o644)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
