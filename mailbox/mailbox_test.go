package mailbox

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/0xRampey/hyperlane-monorepo"
	"github.com/0xRampey/hyperlane-monorepo/abi"
	"github.com/0xRampey/hyperlane-monorepo/errors"
)

// Selectors of every Mailbox function, keyed by canonical signature. These
// are the values the deployed contract dispatches on, so they pin both the
// signature rendering and the Keccak implementation.
var knownSelectors = map[string]string{
	"VERSION()":                                        "0xffa1ad74",
	"defaultHook()":                                    "0x3d1250b7",
	"defaultIsm()":                                     "0x6e5f516e",
	"delivered(bytes32)":                               "0xe495f1d4",
	"deployedBlock()":                                  "0x82ea7bfe",
	"dispatch(uint32,bytes32,bytes,bytes,address)":     "0x10b83dc0",
	"dispatch(uint32,bytes32,bytes,bytes)":             "0x48aee8d4",
	"dispatch(uint32,bytes32,bytes)":                   "0xfa31de01",
	"initialize(address,address,address,address)":      "0xf8c8765e",
	"latestDispatchedId()":                             "0x134fbb4f",
	"localDomain()":                                    "0x8d3638f4",
	"nonce()":                                          "0xaffed0e0",
	"owner()":                                          "0x8da5cb5b",
	"process(bytes,bytes)":                             "0x7c39d130",
	"processedAt(bytes32)":                             "0x07a2fda1",
	"processor(bytes32)":                               "0x5d1fe5a9",
	"quoteDispatch(uint32,bytes32,bytes,bytes,address)": "0x81d2ea95",
	"quoteDispatch(uint32,bytes32,bytes)":              "0x9c42bd18",
	"quoteDispatch(uint32,bytes32,bytes,bytes)":        "0xf7ccd321",
	"recipientIsm(address)":                            "0xe70f48ac",
	"renounceOwnership()":                              "0x715018a6",
	"requiredHook()":                                   "0xd6d08a09",
	"setDefaultHook(address)":                          "0x99b04809",
	"setDefaultIsm(address)":                           "0xf794687a",
	"setRequiredHook(address)":                         "0x1426b7f4",
	"transferOwnership(address)":                       "0xf2fde38b",
}

func TestSelectorsMatchDeployedContract(t *testing.T) {
	iface := Interface()
	if got := len(iface.Functions); got != len(knownSelectors) {
		t.Fatalf("parsed %d functions, want %d", got, len(knownSelectors))
	}
	for _, s := range iface.Functions {
		want, ok := knownSelectors[s.Signature()]
		if !ok {
			t.Errorf("unexpected function %s", s.Signature())
			continue
		}
		if got := s.Selector().Hex(); got != want {
			t.Errorf("%s: selector %s, want %s", s.Signature(), got, want)
		}
	}
}

func TestRegistryIdempotent(t *testing.T) {
	first := Table()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Table() != first {
				t.Error("Table() returned a different instance")
			}
		}()
	}
	wg.Wait()

	if Interface() != Interface() {
		t.Error("Interface() returned different instances")
	}
}

func TestEncodeCallOverloadResolution(t *testing.T) {
	recipient := abi.Word{31: 0x01}
	base := []abi.Value{
		abi.Uint32Value(7),
		abi.WordValue(recipient),
		abi.BytesValue([]byte("hi")),
	}
	hook := abi.AddressValue(abi.Address{19: 0xcc})

	cases := []struct {
		name    string
		fn      string
		args    []abi.Value
		wantSel string
	}{
		{"dispatch_3", "dispatch", base, "0xfa31de01"},
		{"dispatch_4", "dispatch", append(base[:3:3], abi.BytesValue(nil)), "0x48aee8d4"},
		{"dispatch_5", "dispatch", append(append(base[:3:3], abi.BytesValue(nil)), hook), "0x10b83dc0"},
		{"quote_3", "quoteDispatch", base, "0x9c42bd18"},
		{"quote_4", "quoteDispatch", append(base[:3:3], abi.BytesValue(nil)), "0xf7ccd321"},
		{"quote_5", "quoteDispatch", append(append(base[:3:3], abi.BytesValue(nil)), hook), "0x81d2ea95"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeCall(tc.fn, tc.args...)
			if err != nil {
				t.Fatalf("EncodeCall: %v", err)
			}
			var sel abi.Selector
			copy(sel[:], data[:4])
			if got := sel.Hex(); got != tc.wantSel {
				t.Errorf("selector %s, want %s", got, tc.wantSel)
			}
		})
	}
}

func TestEncodeCallErrors(t *testing.T) {
	t.Run("unknown_function", func(t *testing.T) {
		_, err := EncodeCall("selfDestruct")
		if err == nil {
			t.Fatal("unknown function accepted")
		}
	})

	t.Run("wrong_arity", func(t *testing.T) {
		_, err := EncodeCall("delivered")
		if err == nil {
			t.Fatal("missing argument accepted")
		}
	})

	t.Run("wrong_type", func(t *testing.T) {
		_, err := EncodeCall("delivered", abi.StringValue("not a hash"))
		if err == nil {
			t.Fatal("mistyped argument accepted")
		}
	})
}

func TestDecodeCallRoundTrip(t *testing.T) {
	recipient := abi.Word{31: 0x01}
	calldata, err := EncodeCall("dispatch",
		abi.Uint32Value(7), abi.WordValue(recipient), abi.BytesValue([]byte("hi")))
	if err != nil {
		t.Fatalf("EncodeCall: %v", err)
	}

	call, err := DecodeCall(calldata)
	if err != nil {
		t.Fatalf("DecodeCall: %v", err)
	}
	if got := call.Schema.Signature(); got != "dispatch(uint32,bytes32,bytes)" {
		t.Errorf("matched %s", got)
	}
	dest, _ := call.Arg("_destinationDomain")
	if n, _ := dest.Uint64(); n != 7 {
		t.Errorf("_destinationDomain = %s, want 7", dest)
	}
	if v, _ := call.Arg("_messageBody"); !bytes.Equal(v.Bytes, []byte("hi")) {
		t.Errorf("_messageBody = %s", v)
	}
}

func TestDecodeCallUnknownSelector(t *testing.T) {
	_, err := DecodeCall([]byte{0x00, 0x11, 0x22, 0x33})
	if !errors.IsNoMatchingSchema(err) {
		t.Errorf("want no_matching_schema, got %v", err)
	}
}

func TestDecodeDispatchLog(t *testing.T) {
	ev, err := EventSchema("Dispatch")
	if err != nil {
		t.Fatalf("EventSchema: %v", err)
	}

	sender := abi.Address{19: 0xaa}
	senderTopic := abi.WordFromBytes(sender[:])
	destTopic := abi.WordFromBytes([]byte{7})
	recipient := abi.Word{31: 0x01}

	data, err := abi.Encode(
		[]abi.Type{abi.MustParse("bytes")},
		[]abi.Value{abi.BytesValue([]byte("message body"))})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := DecodeLog(hyperlane.Log{
		Topics: []abi.Word{ev.TopicID(), senderTopic, destTopic, recipient},
		Data:   data,
	})
	if err != nil {
		t.Fatalf("DecodeLog: %v", err)
	}
	if decoded.Schema.Name != "Dispatch" {
		t.Fatalf("matched %s", decoded.Schema.Name)
	}
	from, _ := decoded.Field("sender")
	if a, _ := from.Address(); a != sender {
		t.Errorf("sender = %s", from)
	}
	if v, _ := decoded.Field("message"); !bytes.Equal(v.Bytes, []byte("message body")) {
		t.Errorf("message = %s", v)
	}
}

func TestEventSchemaUnknown(t *testing.T) {
	if _, err := EventSchema("Reorged"); err == nil {
		t.Error("unknown event accepted")
	}
}

// fakeTransport answers reads from a canned response table keyed by
// selector and records writes.
type fakeTransport struct {
	responses map[abi.Selector][]byte
	sent      [][]byte
}

func (f *fakeTransport) Call(_ context.Context, calldata []byte) ([]byte, error) {
	var sel abi.Selector
	copy(sel[:], calldata[:4])
	resp, ok := f.responses[sel]
	if !ok {
		return nil, errors.NotFound(errors.PhaseDispatch, "response", sel.Hex())
	}
	return resp, nil
}

func (f *fakeTransport) Send(_ context.Context, calldata []byte) error {
	f.sent = append(f.sent, calldata)
	return nil
}

func respondUint(n uint64) []byte {
	out := make([]byte, abi.WordSize)
	for i := 0; i < 8; i++ {
		out[abi.WordSize-1-i] = byte(n >> (8 * i))
	}
	return out
}

func selectorOf(t *testing.T, sig string) abi.Selector {
	t.Helper()
	for _, s := range Interface().Functions {
		if s.Signature() == sig {
			return s.Selector()
		}
	}
	t.Fatalf("no such function %s", sig)
	return abi.Selector{}
}

func TestCaller(t *testing.T) {
	transport := &fakeTransport{responses: map[abi.Selector][]byte{}}
	caller := NewCaller(transport)
	ctx := context.Background()

	transport.responses[selectorOf(t, "localDomain()")] = respondUint(1337)
	transport.responses[selectorOf(t, "nonce()")] = respondUint(41)
	transport.responses[selectorOf(t, "delivered(bytes32)")] = respondUint(1)
	owner := make([]byte, abi.WordSize)
	owner[abi.WordSize-1] = 0xee
	transport.responses[selectorOf(t, "owner()")] = owner

	t.Run("local_domain", func(t *testing.T) {
		domain, err := caller.LocalDomain(ctx)
		if err != nil {
			t.Fatalf("LocalDomain: %v", err)
		}
		if domain != 1337 {
			t.Errorf("domain = %d, want 1337", domain)
		}
	})

	t.Run("nonce", func(t *testing.T) {
		nonce, err := caller.Nonce(ctx)
		if err != nil {
			t.Fatalf("Nonce: %v", err)
		}
		if nonce != 41 {
			t.Errorf("nonce = %d, want 41", nonce)
		}
	})

	t.Run("delivered", func(t *testing.T) {
		ok, err := caller.Delivered(ctx, abi.Word{31: 0x01})
		if err != nil {
			t.Fatalf("Delivered: %v", err)
		}
		if !ok {
			t.Error("Delivered = false, want true")
		}
	})

	t.Run("owner", func(t *testing.T) {
		got, err := caller.Owner(ctx)
		if err != nil {
			t.Fatalf("Owner: %v", err)
		}
		if got != (abi.Address{19: 0xee}) {
			t.Errorf("owner = %s", got.Hex())
		}
	})

	t.Run("dispatch_sends", func(t *testing.T) {
		before := len(transport.sent)
		err := caller.Dispatch(ctx, 7, abi.Word{31: 0x01}, []byte("hi"))
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if len(transport.sent) != before+1 {
			t.Fatal("Dispatch did not submit calldata")
		}
		sent := transport.sent[len(transport.sent)-1]
		want := selectorOf(t, "dispatch(uint32,bytes32,bytes)")
		if !bytes.Equal(sent[:4], want[:]) {
			t.Errorf("sent selector %x, want %s", sent[:4], want.Hex())
		}
	})

	t.Run("transport_error_propagates", func(t *testing.T) {
		if _, err := caller.Version(ctx); err == nil {
			t.Error("missing response should surface as an error")
		}
	})
}
