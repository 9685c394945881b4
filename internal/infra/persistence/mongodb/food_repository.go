package mongodb

import (
	"context"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// foodRepository implements the repository.FoodRepository interface.
type foodRepository struct {
	collection *mongo.Collection
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(client *Client) repository.FoodRepository {
	return &foodRepository{
		collection: client.FoodCollection(),
	}
}

// FindByID retrieves a food by its id.
func (repo *foodRepository) FindByID(ctx context.Context, id string) (*entity.Food, error) {
	var doc model.FoodDocument

	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by id")
	}

	return toFoodDomain(&doc), nil
}

// FindAll retrieves every food as a snapshot read.
func (repo *foodRepository) FindAll(ctx context.Context) ([]*entity.Food, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all foods")
	}
	defer cursor.Close(ctx)

	var docs []model.FoodDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode foods")
	}

	foods := make([]*entity.Food, 0, len(docs))
	for i := range docs {
		foods = append(foods, toFoodDomain(&docs[i]))
	}

	return foods, nil
}

// FindByName retrieves a food by its exact name. Returns (nil, nil)
// when no document matches.
func (repo *foodRepository) FindByName(ctx context.Context, name string) (*entity.Food, error) {
	var doc model.FoodDocument

	if err := repo.collection.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find food by name")
	}

	return toFoodDomain(&doc), nil
}

// Insert persists a new food document.
func (repo *foodRepository) Insert(ctx context.Context, food *entity.Food) error {
	if _, err := repo.collection.InsertOne(ctx, fromFoodDomain(food)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateFood
		}

		return errors.Wrap(err, "failed to insert food")
	}

	return nil
}

// Patch sends only the supplied fields as a $set partial update. A
// whole-document replace would clobber fields written concurrently by
// other requests.
func (repo *foodRepository) Patch(ctx context.Context, update entity.FoodUpdate, updatedAt time.Time) error {
	set := foodPatchDocument(update, updatedAt)

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": update.ID}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to patch food")
	}

	if result.MatchedCount == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// DeleteByID removes the food with the given id.
func (repo *foodRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete food")
	}

	if result.DeletedCount == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// foodPatchDocument builds the $set document for a partial update.
// Only supplied fields appear in it, plus the updatedAt stamp.
func foodPatchDocument(update entity.FoodUpdate, updatedAt time.Time) bson.M {
	set := bson.M{"updatedAt": updatedAt}
	if v, ok := update.Name.Get(); ok {
		set["name"] = v
	}
	if v, ok := update.Rating.Get(); ok {
		set["rating"] = v
	}
	if v, ok := update.IsHealthyOption.Get(); ok {
		set["isHealthyOption"] = v
	}
	if v, ok := update.Cost.Get(); ok {
		set["cost"] = v
	}
	if v, ok := update.Ingredients.Get(); ok {
		set["ingredients"] = v
	}
	if v, ok := update.Course.Get(); ok {
		set["course"] = v
	}
	if v, ok := update.Difficulty.Get(); ok {
		set["difficulty"] = v
	}
	if v, ok := update.Speed.Get(); ok {
		set["speed"] = v
	}

	return set
}

// toFoodDomain converts a stored document into a domain entity.
func toFoodDomain(doc *model.FoodDocument) *entity.Food {
	return &entity.Food{
		Consumable: entity.Consumable{
			ID:              doc.ID,
			Name:            doc.Name,
			Rating:          doc.Rating,
			IsHealthyOption: doc.IsHealthyOption,
			Cost:            doc.Cost,
			CreatedAt:       doc.CreatedAt,
			UpdatedAt:       doc.UpdatedAt,
		},
		Ingredients: doc.Ingredients,
		Course:      doc.Course,
		Difficulty:  doc.Difficulty,
		Speed:       doc.Speed,
	}
}

// fromFoodDomain converts a domain entity into its stored document.
func fromFoodDomain(food *entity.Food) *model.FoodDocument {
	return &model.FoodDocument{
		ID:              food.ID,
		Name:            food.Name,
		Rating:          food.Rating,
		IsHealthyOption: food.IsHealthyOption,
		Cost:            food.Cost,
		Ingredients:     food.Ingredients,
		Course:          food.Course,
		Difficulty:      food.Difficulty,
		Speed:           food.Speed,
		CreatedAt:       food.CreatedAt,
		UpdatedAt:       food.UpdatedAt,
	}
}
