package catalog

import (
	"context"

	"github.com/shopease/shopease/internal/models"
)

// Seed loads the starter catalog into an empty products table. Subsequent
// runs leave whatever the admin has done to it alone.
func Seed(ctx context.Context, repo *GormRepo) error {
	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	for i := range starterProducts {
		if err := repo.Create(ctx, &starterProducts[i]); err != nil {
			return err
		}
	}
	return nil
}

var starterProducts = []models.Product{
	{
		Name:        "Wireless Noise-Cancelling Headphones",
		Description: "Over-ear headphones with active noise cancellation and 30-hour battery life.",
		Price:       199.99,
		Image:       "/images/headphones.jpg",
		Category:    "Electronics",
		Rating:      4.7,
		Reviews:     1284,
		Discount:    15,
		Stock:       42,
		Colors:      models.StringList{"Black", "Silver", "Midnight Blue"},
	},
	{
		Name:        "Smart Fitness Watch",
		Description: "Heart-rate tracking, GPS and a week of battery on a single charge.",
		Price:       149.5,
		Image:       "/images/watch.jpg",
		Category:    "Electronics",
		Rating:      4.4,
		Reviews:     867,
		Discount:    0,
		Stock:       63,
		Colors:      models.StringList{"Black", "Rose Gold"},
	},
	{
		Name:        "Classic Cotton T-Shirt",
		Description: "Heavyweight 100% cotton tee with a relaxed fit.",
		Price:       24.99,
		Image:       "/images/tshirt.jpg",
		Category:    "Clothing",
		Rating:      4.2,
		Reviews:     2310,
		Discount:    0,
		Stock:       180,
		Colors:      models.StringList{"White", "Black", "Red", "Navy"},
		Sizes:       models.StringList{"S", "M", "L", "XL"},
	},
	{
		Name:        "Slim Fit Denim Jeans",
		Description: "Stretch denim with a modern slim cut.",
		Price:       59.99,
		Image:       "/images/jeans.jpg",
		Category:    "Clothing",
		Rating:      4.1,
		Reviews:     954,
		Discount:    20,
		Stock:       97,
		Colors:      models.StringList{"Indigo", "Washed Black"},
		Sizes:       models.StringList{"28", "30", "32", "34", "36"},
	},
	{
		Name:        "Trail Running Shoes",
		Description: "Grippy outsole and breathable mesh upper for off-road miles.",
		Price:       119.0,
		Image:       "/images/shoes.jpg",
		Category:    "Footwear",
		Rating:      4.6,
		Reviews:     640,
		Discount:    10,
		Stock:       54,
		Colors:      models.StringList{"Charcoal", "Volt"},
		Sizes:       models.StringList{"7", "8", "9", "10", "11", "12"},
	},
	{
		Name:        "Leather Weekender Bag",
		Description: "Full-grain leather duffel sized for a two-day trip.",
		Price:       230.0,
		Image:       "/images/bag.jpg",
		Category:    "Accessories",
		Rating:      4.8,
		Reviews:     212,
		Discount:    0,
		Stock:       18,
		Colors:      models.StringList{"Tan", "Dark Brown"},
	},
	{
		Name:        "Stainless Steel Water Bottle",
		Description: "Double-wall insulated bottle, keeps drinks cold for 24 hours.",
		Price:       32.5,
		Image:       "/images/bottle.jpg",
		Category:    "Accessories",
		Rating:      4.5,
		Reviews:     1755,
		Discount:    5,
		Stock:       210,
		Colors:      models.StringList{"Steel", "Matte Black", "Seafoam"},
	},
	{
		Name:        "Portable Bluetooth Speaker",
		Description: "Pocket-sized speaker with surprisingly big sound and IPX7 rating.",
		Price:       79.99,
		Image:       "/images/speaker.jpg",
		Category:    "Electronics",
		Rating:      4.3,
		Reviews:     1490,
		Discount:    25,
		Stock:       75,
		Colors:      models.StringList{"Black", "Teal", "Coral"},
	},
	{
		Name:        "Ceramic Pour-Over Coffee Set",
		Description: "Dripper, carafe and two cups in matte stoneware.",
		Price:       64.0,
		Image:       "/images/coffee.jpg",
		Category:    "Home",
		Rating:      4.9,
		Reviews:     330,
		Discount:    0,
		Stock:       25,
	},
	{
		Name:        "Merino Wool Beanie",
		Description: "Soft, itch-free merino knit for cold mornings.",
		Price:       28.0,
		Image:       "/images/beanie.jpg",
		Category:    "Clothing",
		Rating:      4.0,
		Reviews:     412,
		Discount:    0,
		Stock:       140,
		Colors:      models.StringList{"Oatmeal", "Forest", "Black"},
		Sizes:       models.StringList{"One Size"},
	},
}
