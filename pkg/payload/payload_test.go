package payload_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quirkhelper/sidecar/pkg/payload"
)

var _ = Describe("Decode", func() {
	It("uses the top-level object when there is no wrapper", func() {
		p := payload.Decode([]byte(`{"store":"Quirk"}`))

		Expect(p.String("store")).To(Equal("Quirk"))
	})

	It("unwraps an object nested under payload", func() {
		p := payload.Decode([]byte(`{"payload":{"store":"Quirk"}}`))

		Expect(p.String("store")).To(Equal("Quirk"))
		Expect(p).NotTo(HaveKey("payload"))
	})

	It("decodes wrapped and unwrapped bodies identically", func() {
		inner := `{"store":"Quirk","salesFunnel":{"leads":"12"},"url":"https://x"}`
		Expect(payload.Decode([]byte(`{"payload":` + inner + `}`))).To(Equal(payload.Decode([]byte(inner))))
	})

	It("unwraps nested wrappers down to the innermost object", func() {
		inner := `{"payload":{"note":"n"}}`
		Expect(payload.Decode([]byte(`{"payload":` + inner + `}`))).To(Equal(payload.Decode([]byte(inner))))
		Expect(payload.Decode([]byte(inner)).String("note")).To(Equal("n"))
	})

	It("keeps a non-object payload key as ordinary data", func() {
		p := payload.Decode([]byte(`{"payload":"text","note":"hi"}`))

		Expect(p.String("payload")).To(Equal("text"))
		Expect(p.String("note")).To(Equal("hi"))
	})

	DescribeTable("returns an empty payload for unusable bodies",
		func(body string) {
			Expect(payload.Decode([]byte(body))).To(BeEmpty())
		},
		Entry("empty", ""),
		Entry("whitespace", "  \n"),
		Entry("invalid json", "{not json"),
		Entry("array", "[1,2,3]"),
		Entry("string", `"hello"`),
		Entry("null", "null"),
	)
})

var _ = Describe("Payload accessors", func() {
	var p payload.Payload

	BeforeEach(func() {
		p = payload.Decode([]byte(`{
			"name": "Quirk",
			"count": 7,
			"fraction": 7.9,
			"negative": -2.5,
			"numeric_text": " 42 ",
			"bad_text": "12abc",
			"flag": true,
			"nothing": null,
			"nested": {"inner": {"value": "5"}},
			"list": [1, 2]
		}`))
	})

	It("reads strings and formats numbers as text", func() {
		Expect(p.String("name")).To(Equal("Quirk"))
		Expect(p.String("count")).To(Equal("7"))
		Expect(p.String("flag")).To(BeEmpty())
		Expect(p.String("missing")).To(BeEmpty())
	})

	DescribeTable("coerces numbers",
		func(key string, want int) {
			Expect(p.Int(key)).To(Equal(want))
		},
		Entry("integer", "count", 7),
		Entry("fraction truncates", "fraction", 7),
		Entry("negative fraction truncates toward zero", "negative", -2),
		Entry("trimmed numeric text", "numeric_text", 42),
		Entry("malformed text", "bad_text", 0),
		Entry("bool", "flag", 0),
		Entry("null", "nothing", 0),
		Entry("object", "nested", 0),
		Entry("array", "list", 0),
		Entry("missing", "missing", 0),
	)

	It("follows nested paths", func() {
		Expect(p.Int("nested", "inner", "value")).To(Equal(5))
		Expect(p.Object("nested").Object("inner").String("value")).To(Equal("5"))
	})

	It("tolerates paths through non-objects", func() {
		Expect(p.Int("name", "inner")).To(Equal(0))
		Expect(p.Object("list")).To(BeEmpty())
	})

	It("returns the first non-empty string among paths", func() {
		Expect(p.FirstString([]string{"missing"}, []string{"name"})).To(Equal("Quirk"))
		Expect(p.FirstString([]string{"missing"})).To(BeEmpty())
	})

	It("returns the first present int among paths, skipping nulls", func() {
		Expect(p.FirstInt([]string{"nothing"}, []string{"count"})).To(Equal(7))
		Expect(p.FirstInt([]string{"bad_text"}, []string{"count"})).To(Equal(0))
		Expect(p.FirstInt([]string{"missing"})).To(Equal(0))
	})
})
