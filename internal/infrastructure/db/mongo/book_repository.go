package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const booksCollection = "books"

// BookRepository persists catalogue entries.
type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

type bookDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Author        string             `bson:"author"`
	ISBN          string             `bson:"isbn"`
	Description   string             `bson:"description,omitempty"`
	Genre         string             `bson:"genre,omitempty"`
	Price         float64            `bson:"price"`
	Stock         int                `bson:"stock"`
	PublishedYear int                `bson:"published_year"`
	Available     bool               `bson:"available"`
	CreatedBy     string             `bson:"created_by"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (d bookDoc) toDomain() domain.Book {
	return domain.Book{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Author:        d.Author,
		ISBN:          d.ISBN,
		Description:   d.Description,
		Genre:         d.Genre,
		Price:         d.Price,
		Stock:         d.Stock,
		PublishedYear: d.PublishedYear,
		Available:     d.Available,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func fromDomainBook(b *domain.Book) bookDoc {
	return bookDoc{
		Title:         b.Title,
		Author:        b.Author,
		ISBN:          b.ISBN,
		Description:   b.Description,
		Genre:         b.Genre,
		Price:         b.Price,
		Stock:         b.Stock,
		PublishedYear: b.PublishedYear,
		Available:     b.Available,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	res, err := r.coll.InsertOne(ctx, fromDomainBook(book))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateISBN
		}
		return nil, fmt.Errorf("insert book: %w", err)
	}

	created := *book
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "created_by": ownerID})
}

func (r *BookRepository) FindAnyByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *BookRepository) List(ctx context.Context, q ports.ListBooksQuery) ([]domain.Book, int64, error) {
	filter := bson.M{"created_by": q.OwnerID}
	if q.Search != "" {
		pattern := searchPattern(q.Search)
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"author": pattern},
			bson.M{"genre": pattern},
			bson.M{"description": pattern},
		}
	}
	if q.Author != "" {
		filter["author"] = searchPattern(q.Author)
	}
	if q.Available != nil {
		filter["available"] = *q.Available
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	sortDir := -1
	if q.SortOrder == "asc" {
		sortDir = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: q.SortBy, Value: sortDir}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer cur.Close(ctx)

	books := make([]domain.Book, 0)
	for cur.Next(ctx) {
		var doc bookDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate books: %w", err)
	}
	return books, total, nil
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	oid, err := primitive.ObjectIDFromHex(book.ID)
	if err != nil {
		return domain.ErrBookNotFound
	}

	doc := fromDomainBook(book)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid, "created_by": book.CreatedBy}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateISBN
		}
		return fmt.Errorf("update book: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "created_by": ownerID})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// DecrementStock is a single conditional update, so concurrent purchases
// cannot oversell: the filter only matches while enough stock remains.
func (r *BookRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	filter := bson.M{"_id": oid, "stock": bson.M{"$gte": qty}}
	update := bson.M{
		"$inc": bson.M{"stock": -qty},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// RestoreStock puts copies back after a decrement that could not be kept,
// for example when a later line of the same order fails.
func (r *BookRepository) RestoreStock(ctx context.Context, id string, qty int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	update := bson.M{
		"$inc": bson.M{"stock": qty},
		"$set": bson.M{"available": true, "updated_at": time.Now().UTC()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// searchPattern builds a case-insensitive substring match. The input is
// treated as literal text, never as a regular expression.
func searchPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func (r *BookRepository) findOne(ctx context.Context, filter bson.M) (*domain.Book, error) {
	var doc bookDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	book := doc.toDomain()
	return &book, nil
}
