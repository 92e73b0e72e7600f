package javaobj

import "testing"

func benchStream() []byte {
	b := newStream()
	b.u8(tcObject).
		classDesc("com.example.Event", scSerializable, []wireField{
			{code: typeLong, name: "id"},
			{code: typeInt, name: "kind"},
			{code: typeObject, name: "name", className: "Ljava/lang/String;"},
			{code: typeObject, name: "tags", className: "[Ljava/lang/String;"},
		}).nullSuper().
		u64(0x1122334455667788).
		u32(3).
		u8(tcString).utf("first event")
	b.u8(tcArray).
		classDesc("[Ljava.lang.String;", scSerializable, nil).nullSuper().
		u32(4).
		u8(tcString).utf("alpha").
		u8(tcString).utf("beta").
		u8(tcReference).u32(baseWireHandle + 7). // "alpha" again
		u8(tcNull)
	b.u8(tcBlockData).u8(4).raw([]byte{1, 2, 3, 4})
	return b.bytes()
}

func BenchmarkUnmarshal(b *testing.B) {
	buf := benchStream()
	if _, err := Unmarshal(buf); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal(buf); err != nil {
			b.Fatal(err)
		}
	}
}
