package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is the genre sub-document of a movie.
type Genre struct {
	Name        string `json:"name" bson:"name" example:"Drama"`
	Description string `json:"description" bson:"description" example:"Serious, plot-driven stories."`
}

// Director is the director sub-document of a movie.
type Director struct {
	Name  string `json:"name" bson:"name" example:"Sidney Lumet"`
	Bio   string `json:"bio" bson:"bio" example:"American director known for courtroom dramas."`
	Birth string `json:"birth,omitempty" bson:"birth,omitempty" example:"1924"`
	Death string `json:"death,omitempty" bson:"death,omitempty" example:"2011"`
}

// Movie represents a catalog entry. Movies are read-only through the API
// and seeded out-of-band.
type Movie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f191e810c19729de860ea"`
	Title       string             `json:"title" bson:"title" example:"12 Angry Men"`
	Description string             `json:"description" bson:"description" example:"A jury deliberates the fate of a teenager."`
	Genre       Genre              `json:"genre" bson:"genre"`
	Director    Director           `json:"director" bson:"director"`
	ImagePath   string             `json:"imagePath" bson:"imagePath" example:"posters/12-angry-men.jpg"`
	Featured    bool               `json:"featured" bson:"featured" example:"true"`
}
