package logger

import "testing"

func TestSanitizeLimit(t *testing.T) {
	in := "hello\x00world\x1b[0m"
	got := SanitizeLimit(in, 8)
	if got != "hellowor" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
	if SanitizeLimit("abc", 0) != "" {
		t.Fatal("expected empty string for zero limit")
	}
	if SanitizeLimit("tab\tok", 10) != "tab\tok" {
		t.Fatal("tab should survive sanitization")
	}
}

func TestBuildRID(t *testing.T) {
	if rid := BuildRID(42, 7, 9); rid != "42:7:9" {
		t.Fatalf("BuildRID = %q", rid)
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := WithRID(Background(), "rid-1")
	ctx = WithUpdateMeta(ctx, 1, 22, 33)
	ctx = WithHandler(ctx, "create.single")

	if RIDFrom(ctx) != "rid-1" {
		t.Fatalf("rid = %q", RIDFrom(ctx))
	}
	if UserIDFrom(ctx) != 22 {
		t.Fatalf("user id = %d", UserIDFrom(ctx))
	}
	if HandlerFrom(ctx) != "create.single" {
		t.Fatalf("handler = %q", HandlerFrom(ctx))
	}
}
