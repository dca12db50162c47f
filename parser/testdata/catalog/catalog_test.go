package catalog

type Fixture struct {
	Book *Book
}
