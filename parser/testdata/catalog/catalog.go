package catalog

import "time"

type Catalog struct {
	Title     string
	Publisher *Publisher
	Books     []*Book
	Shelf     Shelf
	Archive   Archive
	Aliased   BookList
	Covers    []Cover
	Media     *Media
	Tags      map[string]string
	Updated   *time.Time
	Matrix    [2]*Book
	First, Second *Publisher
	Featured  *Featured
	hidden    *Publisher
	_         *Publisher
	*Audit
}

type Publisher struct {
	Name string
}

type Book struct {
	ISBN   string
	Status Status
}

// NewBook returns a book in draft status.
func NewBook(opts ...BookOption) *Book {
	b := &Book{Status: "draft"}
	for _, o := range opts {
		o(b)
	}
	return b
}

type BookOption func(*Book)

type Status string

type Shelf []*Book

type Archive Shelf

type BookList = []*Book

type Cover struct {
	URL string
}

type Media interface {
	Kind() string
}

//fluentgen:abstract
type Item struct {
	ID string
}

type Audit struct {
	By string
}

type Isbn struct {
	Value string
}

func NewIsbn(value string) *Isbn {
	return &Isbn{Value: value}
}

type Conn struct {
	Addr string
}

func NewConn() (*Conn, error) {
	return &Conn{}, nil
}

func (i *Isbn) String() string { return i.Value }

type Index struct {
	Entries []*Entry
}

type Entry struct {
	Key string
}

type Pair[T any] struct {
	Left, Right T
}

type unexported struct {
	Name string
}

type Featured Publisher
