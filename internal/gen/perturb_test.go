package gen

import "testing"

func TestRegistryHasAllPolicies(t *testing.T) {
	for _, name := range []string{"none", "uniform", "decay", "noise"} {
		factory, ok := Perturbers()[name]
		if !ok {
			t.Fatalf("policy %q not registered", name)
		}
		p := factory(nil)
		if p == nil || p.Name() != name {
			t.Fatalf("factory for %q built %#v", name, p)
		}
	}
}

func TestFactoryParsesProbability(t *testing.T) {
	p := Perturbers()["uniform"](map[string]string{"p": "0.25"})
	u, ok := p.(Uniform)
	if !ok {
		t.Fatalf("uniform factory built %T", p)
	}
	if u.P != 0.25 {
		t.Fatalf("parsed probability %v, want 0.25", u.P)
	}
}

func TestFactoryRejectsBadProbability(t *testing.T) {
	for _, bad := range []string{"-0.5", "1.5", "nope"} {
		p := Perturbers()["decay"](map[string]string{"p": bad})
		d, ok := p.(Decay)
		if !ok {
			t.Fatalf("decay factory built %T", p)
		}
		if d.P != DefaultFlipProbability {
			t.Fatalf("probability %q accepted as %v", bad, d.P)
		}
	}
}

func TestNoiseFactoryParsesFrequency(t *testing.T) {
	p := Perturbers()["noise"](map[string]string{"p": "0.1", "freq": "0.5"})
	n, ok := p.(*Noise)
	if !ok {
		t.Fatalf("noise factory built %T", p)
	}
	if n.P != 0.1 || n.Freq != 0.5 {
		t.Fatalf("parsed p=%v freq=%v", n.P, n.Freq)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Perturbers())
	Register("", func(map[string]string) Perturber { return None{} })
	Register("ghost", nil)
	if len(Perturbers()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}
