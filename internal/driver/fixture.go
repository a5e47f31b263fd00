package driver

import "fmt"

// DemoFixture returns a small in-memory record set for demonstrating
// the pipeline end to end: three near-duplicate "articles" plus one
// unrelated record. With the default configuration article/0001 and
// article/0003 form one cluster; article/0002's longer tail changes all
// of its super-features, so it is not clustered with them. Real corpus
// ingestion (walking a dataset directory, parsing Wikipedia/Enron/
// StackOverflow-specific formats) is out of scope for this module, so
// this fixture exists only so cmd/deltabench has something to run the
// pipeline against without a real dataset on disk.
func DemoFixture() map[string][]byte {
	base := "the quick brown fox jumps over the lazy dog. this sentence repeats to give the " +
		"feature generator enough content-defined sampling points to work with. "

	records := map[string][]byte{
		"article/0001": []byte(base + "revision one."),
		"article/0002": []byte(base + "revision two, with a slightly longer tail appended at the end."),
		"article/0003": []byte(base + "revision three."),
		"unrelated/001": []byte(fmt.Sprintf("completely unrelated binary-ish payload %x", 0xdeadbeefcafebabe)),
	}
	return records
}
