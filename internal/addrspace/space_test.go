package addrspace

import (
	"errors"
	"net/netip"
	"testing"
)

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []struct {
		family Family
		in     string
		want   string
	}{
		{V4, "192.168.1.100", "192.168.1.100"},
		{V4, "0.0.0.0", "0.0.0.0"},
		{V4, "255.255.255.255", "255.255.255.255"},
		{V4, " 10.0.0.1 ", "10.0.0.1"},
		{V6, "2001:db8::1", "2001:db8::1"},
		{V6, "2001:0db8:0000:0000:0000:0000:0000:0001", "2001:db8::1"},
		{V6, "2001:DB8:0:0:1:0:0:1", "2001:db8::1:0:0:1"},
		{V6, "::", "::"},
		{V6, "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
		{V6, "fe80:0:0:0:0:0:0:0", "fe80::"},
	}

	for _, tt := range tests {
		space := For(tt.family)
		o, err := space.Parse(tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		got, err := space.Format(o)
		if err != nil {
			t.Fatalf("format %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("round trip %q: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestParseRejectsWrongFamilyAndGarbage(t *testing.T) {
	tests := []struct {
		family Family
		in     string
	}{
		{V4, "2001:db8::1"},
		{V4, "10.0.0.256"},
		{V4, "10.0.0"},
		{V4, ""},
		{V6, "10.0.0.1"},
		{V6, "::ffff:10.0.0.1"},
		{V6, "fe80::1%eth0"},
		{V6, "2001:db8:::1"},
	}

	for _, tt := range tests {
		_, err := For(tt.family).Parse(tt.in)
		if !errors.Is(err, ErrInvalidAddressFormat) {
			t.Fatalf("parse %q as %s: expected ErrInvalidAddressFormat, got %v", tt.in, tt.family, err)
		}
	}
}

func TestOrdinalValues(t *testing.T) {
	o, err := For(V4).Parse("0.0.1.2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Cmp64(258) != 0 {
		t.Fatalf("expected ordinal 258, got %s", o)
	}

	max, err := For(V6).Parse("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if max.String() != "340282366920938463463374607431768211455" {
		t.Fatalf("unexpected max v6 ordinal: %s", max)
	}
}

func TestNextCrossesOctetAndStopsAtTop(t *testing.T) {
	v4 := For(V4)
	o, _ := v4.Parse("10.0.0.255")
	next, err := v4.Next(o)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if s, _ := v4.Format(next); s != "10.0.1.0" {
		t.Fatalf("expected 10.0.1.0, got %s", s)
	}

	top, _ := v4.Parse("255.255.255.255")
	if _, err := v4.Next(top); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange past v4 top, got %v", err)
	}

	v6 := For(V6)
	o6, _ := v6.Parse("2001:db8::ffff:ffff:ffff:ffff")
	next6, err := v6.Next(o6)
	if err != nil {
		t.Fatalf("next v6: %v", err)
	}
	if s, _ := v6.Format(next6); s != "2001:db8:0:1::" {
		t.Fatalf("expected carry into the upper half, got %s", s)
	}
}

func TestSize(t *testing.T) {
	v4 := For(V4)
	start, _ := v4.Parse("192.168.1.100")
	end, _ := v4.Parse("192.168.1.105")

	size, err := Size(start, end)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size.Cmp64(6) != 0 {
		t.Fatalf("expected 6, got %s", size)
	}

	if _, err := Size(end, start); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	v6 := For(V6)
	zero, _ := v6.Parse("::")
	all, err := Size(zero, v6.Max())
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected whole v6 space to be rejected, got %s, %v", all, err)
	}
}

func TestFormatRejectsOrdinalWiderThanFamily(t *testing.T) {
	wide, _ := For(V6).Parse("::1:0:0")
	if _, err := For(V4).Format(wide); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestIPv4MappedBlockIsOutsideV6Space(t *testing.T) {
	v6 := For(V6)

	mapped := OrdinalFrom64(0xffff<<32 | 0x0a000001)
	if _, err := v6.Format(mapped); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected mapped ordinal to be rejected, got %v", err)
	}
	if _, err := v6.Parse("::ffff:a00:1"); !errors.Is(err, ErrInvalidAddressFormat) {
		t.Fatalf("expected hex mapped text to be rejected, got %v", err)
	}

	for _, tt := range []struct {
		ordinal Ordinal
		want    string
	}{
		{OrdinalFrom64(0xfffe_ffff_ffff), "::fffe:ffff:ffff"},
		{OrdinalFrom64(1 << 48), "::1:0:0:0"},
	} {
		text, err := v6.Format(tt.ordinal)
		if err != nil || text != tt.want {
			t.Fatalf("format %s: expected %q, got %q, %v", tt.ordinal, tt.want, text, err)
		}
		back, err := v6.Parse(text)
		if err != nil || Compare(back, tt.ordinal) != 0 {
			t.Fatalf("round trip %q: got %s, %v", text, back, err)
		}
	}
}

func TestOverlapsV4Mapped(t *testing.T) {
	tests := []struct {
		cidr string
		want bool
	}{
		{"::/64", true},
		{"::ffff:0:0/112", true},
		{"::/0", true},
		{"2001:db8::/32", false},
		{"::/96", false},
		{"10.0.0.0/8", false},
	}

	for _, tt := range tests {
		if got := OverlapsV4Mapped(netip.MustParsePrefix(tt.cidr)); got != tt.want {
			t.Fatalf("%s: expected %v, got %v", tt.cidr, tt.want, got)
		}
	}
}

func TestValidatePrefix(t *testing.T) {
	if err := ValidatePrefix(V6, 129); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("expected ErrInvalidPrefix, got %v", err)
	}
	if err := ValidatePrefix(V6, -1); !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("expected ErrInvalidPrefix, got %v", err)
	}
	if err := ValidatePrefix(V6, 64); err != nil {
		t.Fatalf("expected /64 to be valid, got %v", err)
	}
	if err := ValidatePrefix(V4, 500); err != nil {
		t.Fatalf("v4 prefixes are not checked, got %v", err)
	}
}

func TestParseFamily(t *testing.T) {
	for in, want := range map[string]Family{"v4": V4, "IPv4": V4, "4": V4, "v6": V6, "ipv6": V6, "6": V6} {
		got, err := ParseFamily(in)
		if err != nil || got != want {
			t.Fatalf("ParseFamily(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFamily("v5"); !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("expected ErrUnknownFamily, got %v", err)
	}
}
