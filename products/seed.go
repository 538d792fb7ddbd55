package products

import (
	"context"
	"log"
	"time"

	"mavrix/db"
	"mavrix/models"

	"go.mongodb.org/mongo-driver/bson"
)

// defaultProducts is the launch catalog, seeded when the collection is
// empty. Prices are in the base currency.
var defaultProducts = []models.Product{
	{ProductID: "1", Name: "Bleu de Chanel", Brand: "Chanel", Price: 125, Size: "100ml", Category: "Woody", Rating: 4.8, Reviews: 1247,
		Img:         "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400",
		Description: "A woody aromatic fragrance for men. Fresh and clean with notes of citrus, mint, and cedar. The perfect everyday scent that transitions seamlessly from day to night.",
		Notes:       []string{"Citrus", "Mint", "Cedar", "Sandalwood"}, InStock: true},
	{ProductID: "2", Name: "Sauvage", Brand: "Dior", Price: 104, Size: "100ml", Category: "Fresh", Rating: 4.7, Reviews: 2341,
		Img:         "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=400",
		Description: "A radically fresh composition with raw masculinity. Bergamot and pepper create an unforgettable trail that commands attention.",
		Notes:       []string{"Bergamot", "Pepper", "Ambroxan", "Vanilla"}, InStock: true},
	{ProductID: "3", Name: "Oud Wood", Brand: "Tom Ford", Price: 250, Size: "50ml", Category: "Oud", Rating: 4.9, Reviews: 892,
		Img:         "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=400",
		Description: "Rare oud wood is blended with rosewood, cardamom, and Chinese pepper for a smoky, exotic scent that defines luxury.",
		Notes:       []string{"Oud", "Rosewood", "Cardamom", "Sandalwood"}, InStock: true},
	{ProductID: "4", Name: "Aventus", Brand: "Creed", Price: 335, Size: "100ml", Category: "Fruity", Rating: 4.9, Reviews: 3456,
		Img:         "https://images.unsplash.com/photo-1615634260167-c8cdede054de?w=400",
		Description: "A sophisticated blend of pineapple, birch, and musk. The scent of success and power, worn by leaders worldwide.",
		Notes:       []string{"Pineapple", "Birch", "Musk", "Oak Moss"}, InStock: true},
	{ProductID: "5", Name: "Acqua di Giò", Brand: "Giorgio Armani", Price: 98, Size: "100ml", Category: "Aquatic", Rating: 4.6, Reviews: 4521,
		Img:         "https://images.unsplash.com/photo-1587017539504-67cfbddac569?w=400",
		Description: "A fresh aquatic fragrance inspired by the Mediterranean sea. Clean, crisp, and refreshing - perfect for summer.",
		Notes:       []string{"Sea Notes", "Bergamot", "Jasmine", "Cedar"}, InStock: true},
	{ProductID: "6", Name: "Eros", Brand: "Versace", Price: 92, Size: "100ml", Category: "Sweet", Rating: 4.5, Reviews: 2876,
		Img:         "https://images.unsplash.com/photo-1563170351-be82bc888aa4?w=400",
		Description: "A bold fragrance with mint, green apple, and vanilla. Passionate and seductive, named after the Greek god of love.",
		Notes:       []string{"Mint", "Green Apple", "Vanilla", "Tonka Bean"}, InStock: true},
	{ProductID: "7", Name: "Cyber Flora", Brand: "Mavrix Collection", Price: 185, Size: "100ml", Category: "Floral", Rating: 4.8, Reviews: 1247,
		Img:         "https://images.unsplash.com/photo-1541643600914-78b084683601?w=400",
		Description: "An ethereal fusion of future and nature. Captures the essence of a digital garden at dusk with luminous bergamot and bio-luminescent jasmine.",
		Notes:       []string{"Bergamot", "Jasmine", "Synthetic Sandalwood", "Amber"}, InStock: true},
	{ProductID: "8", Name: "Nebula Oud", Brand: "Mavrix Collection", Price: 210, Size: "50ml", Category: "Oud", Rating: 4.7, Reviews: 654,
		Img:         "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?w=400",
		Description: "A cosmic journey through rare oud and celestial spices. Mysterious and captivating, for those who dare to explore.",
		Notes:       []string{"Oud", "Saffron", "Rose", "Leather"}, InStock: true},
	{ProductID: "9", Name: "Solar Vetiver", Brand: "Mavrix Collection", Price: 175, Size: "100ml", Category: "Woody", Rating: 4.6, Reviews: 432,
		Img:         "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=400",
		Description: "Sun-drenched vetiver meets warm amber in this radiant composition. A modern classic for the confident individual.",
		Notes:       []string{"Vetiver", "Amber", "Grapefruit", "Cedar"}, InStock: true},
	{ProductID: "10", Name: "Midnight Rose", Brand: "Mavrix Collection", Price: 165, Size: "75ml", Category: "Floral", Rating: 4.8, Reviews: 789,
		Img:         "https://images.unsplash.com/photo-1615634260167-c8cdede054de?w=400",
		Description: "A dark and mysterious take on the classic rose. Black pepper and oud add depth to Bulgarian rose absolute.",
		Notes:       []string{"Bulgarian Rose", "Black Pepper", "Oud", "Patchouli"}, InStock: true},
	{ProductID: "11", Name: "Arctic Breeze", Brand: "Mavrix Collection", Price: 145, Size: "100ml", Category: "Fresh", Rating: 4.5, Reviews: 567,
		Img:         "https://images.unsplash.com/photo-1587017539504-67cfbddac569?w=400",
		Description: "Crisp and invigorating like a breath of arctic air. Cool mint and eucalyptus over a warm musk base.",
		Notes:       []string{"Mint", "Eucalyptus", "White Musk", "Iris"}, InStock: true},
	{ProductID: "12", Name: "Golden Amber", Brand: "Mavrix Collection", Price: 195, Size: "50ml", Category: "Oriental", Rating: 4.9, Reviews: 923,
		Img:         "https://images.unsplash.com/photo-1563170351-be82bc888aa4?w=400",
		Description: "Liquid gold in a bottle. Rich amber, warm vanilla, and precious resins create an opulent, long-lasting scent.",
		Notes:       []string{"Amber", "Vanilla", "Benzoin", "Labdanum"}, InStock: true},
}

// SeedIfEmpty inserts the default catalog when the collection has no
// documents, then loads the cache either way.
func SeedIfEmpty(ctx context.Context) error {
	count, err := db.ProductCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}

	if count == 0 {
		now := time.Now()
		docs := make([]interface{}, 0, len(defaultProducts))
		for _, p := range defaultProducts {
			p.CreatedAt = now
			p.UpdatedAt = now
			docs = append(docs, p)
		}
		if _, err := db.ProductCollection.InsertMany(ctx, docs); err != nil {
			return err
		}
		log.Printf("Seeded %d default products", len(docs))
	}

	return ReloadCatalog(ctx)
}
