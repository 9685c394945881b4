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

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	collection *mongo.Collection
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(client *Client) repository.IngredientRepository {
	return &ingredientRepository{
		collection: client.IngredientCollection(),
	}
}

// FindByID retrieves an ingredient by its id.
func (repo *ingredientRepository) FindByID(ctx context.Context, id string) (*entity.Ingredient, error) {
	var doc model.IngredientDocument

	if err := repo.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by id")
	}

	return toIngredientDomain(&doc), nil
}

// FindAll retrieves every ingredient as a snapshot read.
func (repo *ingredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all ingredients")
	}
	defer cursor.Close(ctx)

	var docs []model.IngredientDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(docs))
	for i := range docs {
		ingredients = append(ingredients, toIngredientDomain(&docs[i]))
	}

	return ingredients, nil
}

// FindByName retrieves an ingredient by its exact name. Returns
// (nil, nil) when no document matches.
func (repo *ingredientRepository) FindByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	var doc model.IngredientDocument

	if err := repo.collection.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find ingredient by name")
	}

	return toIngredientDomain(&doc), nil
}

// Insert persists a new ingredient document.
func (repo *ingredientRepository) Insert(ctx context.Context, ingredient *entity.Ingredient) error {
	if _, err := repo.collection.InsertOne(ctx, fromIngredientDomain(ingredient)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateIngredient
		}

		return errors.Wrap(err, "failed to insert ingredient")
	}

	return nil
}

// Patch sends only the supplied fields as a $set partial update.
func (repo *ingredientRepository) Patch(ctx context.Context, update entity.IngredientUpdate, updatedAt time.Time) error {
	set := ingredientPatchDocument(update, updatedAt)

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": update.ID}, bson.M{"$set": set})
	if err != nil {
		return errors.Wrap(err, "failed to patch ingredient")
	}

	if result.MatchedCount == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// DeleteByID removes the ingredient with the given id.
func (repo *ingredientRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "failed to delete ingredient")
	}

	if result.DeletedCount == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// ingredientPatchDocument builds the $set document for a partial
// update. Only supplied fields appear in it, plus the updatedAt stamp.
func ingredientPatchDocument(update entity.IngredientUpdate, updatedAt time.Time) bson.M {
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
	if v, ok := update.Macro.Get(); ok {
		set["macro"] = v
	}
	if v, ok := update.Barcodes.Get(); ok {
		set["barcodes"] = v
	}

	return set
}

// toIngredientDomain converts a stored document into a domain entity.
func toIngredientDomain(doc *model.IngredientDocument) *entity.Ingredient {
	return &entity.Ingredient{
		Consumable: entity.Consumable{
			ID:              doc.ID,
			Name:            doc.Name,
			Rating:          doc.Rating,
			IsHealthyOption: doc.IsHealthyOption,
			Cost:            doc.Cost,
			CreatedAt:       doc.CreatedAt,
			UpdatedAt:       doc.UpdatedAt,
		},
		Macro:    doc.Macro,
		Barcodes: doc.Barcodes,
	}
}

// fromIngredientDomain converts a domain entity into its stored document.
func fromIngredientDomain(ingredient *entity.Ingredient) *model.IngredientDocument {
	return &model.IngredientDocument{
		ID:              ingredient.ID,
		Name:            ingredient.Name,
		Rating:          ingredient.Rating,
		IsHealthyOption: ingredient.IsHealthyOption,
		Cost:            ingredient.Cost,
		Macro:           ingredient.Macro,
		Barcodes:        ingredient.Barcodes,
		CreatedAt:       ingredient.CreatedAt,
		UpdatedAt:       ingredient.UpdatedAt,
	}
}
