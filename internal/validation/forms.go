package validation

// Select options offered by the public forms.
var (
	ProductCategories = []string{
		"Electronics & Gadgets",
		"Fashion & Apparel",
		"Beauty & Personal Care",
		"Home & Kitchen",
		"Health & Fitness",
		"Food & Beverages",
		"Baby & Kids",
		"Sports & Outdoors",
		"Books & Stationery",
		"Automotive",
		"Other",
	}

	ReviewTypes = []string{
		"Product Review Video",
		"Unboxing & First Impressions",
		"Detailed Written Review",
		"Social Media Posts",
		"Full Campaign (Multiple Formats)",
	}

	BudgetRanges = []string{
		"₹5,000 - ₹15,000",
		"₹15,000 - ₹30,000",
		"₹30,000 - ₹50,000",
		"₹50,000 - ₹1,00,000",
		"₹1,00,000+",
		"Product Barter Only",
	}

	Niches = []string{
		"Tech & Gadgets",
		"Fashion & Lifestyle",
		"Beauty & Skincare",
		"Food & Cooking",
		"Fitness & Health",
		"Travel & Adventure",
		"Home & Decor",
		"Parenting & Kids",
		"Gaming",
		"Finance & Business",
		"Other",
	}

	FollowerRanges = []string{
		"1K - 5K",
		"5K - 10K",
		"10K - 50K",
		"50K - 100K",
		"100K - 500K",
		"500K+",
	}
)

var emailRule = FieldRule{
	Field: "email", Required: true, Max: 255, Format: FormatEmail,
	RequiredMsg: "Invalid email address", FormatMsg: "Invalid email address", MaxMsg: "Email too long",
}

var phoneRule = FieldRule{
	Field: "phone", Required: true, Min: 10, Max: 15,
	MinMsg: "Enter valid phone number", MaxMsg: "Phone number too long",
}

// BrandSchema validates the brand product submission form.
var BrandSchema = Schema{
	{Field: "companyName", Required: true, Min: 2, Max: 100, MinMsg: "Company name is required", MaxMsg: "Name too long"},
	{Field: "contactName", Required: true, Min: 2, Max: 100, MinMsg: "Contact name is required", MaxMsg: "Name too long"},
	emailRule,
	phoneRule,
	{Field: "website", Format: FormatURL, FormatMsg: "Invalid website URL"},
	{Field: "productName", Required: true, Min: 2, Max: 200, MinMsg: "Product name is required", MaxMsg: "Name too long"},
	{Field: "productCategory", Required: true, OneOf: ProductCategories, RequiredMsg: "Please select a category"},
	{Field: "productPrice", Required: true, RequiredMsg: "Price is required"},
	{Field: "productUrl", Required: true, Format: FormatURL, RequiredMsg: "Invalid product URL", FormatMsg: "Invalid product URL"},
	{Field: "productDescription", Required: true, Min: 10, Max: 1000, MinMsg: "Description too short", MaxMsg: "Description too long"},
	{Field: "reviewType", Required: true, OneOf: ReviewTypes, RequiredMsg: "Please select review type"},
	{Field: "budget", Required: true, OneOf: BudgetRanges, RequiredMsg: "Please select budget range"},
	{Field: "additionalInfo", Max: 500, MaxMsg: "Too long"},
}

// InfluencerSchema validates the influencer network application form.
var InfluencerSchema = Schema{
	{Field: "fullName", Required: true, Min: 2, Max: 100, MinMsg: "Name must be at least 2 characters", MaxMsg: "Name too long"},
	emailRule,
	phoneRule,
	{Field: "instagram", Max: 50, MaxMsg: "Handle too long"},
	{Field: "youtube", Max: 100, MaxMsg: "Channel name too long"},
	{Field: "twitter", Max: 50, MaxMsg: "Handle too long"},
	{Field: "niche", Required: true, OneOf: Niches, RequiredMsg: "Please select a niche"},
	{Field: "followers", Required: true, OneOf: FollowerRanges, RequiredMsg: "Please select follower range"},
	{Field: "about", Max: 500, MaxMsg: "About section too long"},
}

// BrandForm is the raw brand submission payload.
type BrandForm struct {
	CompanyName        string `json:"companyName"`
	ContactName        string `json:"contactName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Website            string `json:"website"`
	ProductName        string `json:"productName"`
	ProductCategory    string `json:"productCategory"`
	ProductPrice       string `json:"productPrice"`
	ProductURL         string `json:"productUrl"`
	ProductDescription string `json:"productDescription"`
	ReviewType         string `json:"reviewType"`
	Budget             string `json:"budget"`
	AdditionalInfo     string `json:"additionalInfo"`
}

// Values flattens the form into the field map a Schema reads.
func (f BrandForm) Values() map[string]string {
	return map[string]string{
		"companyName":        f.CompanyName,
		"contactName":        f.ContactName,
		"email":              f.Email,
		"phone":              f.Phone,
		"website":            f.Website,
		"productName":        f.ProductName,
		"productCategory":    f.ProductCategory,
		"productPrice":       f.ProductPrice,
		"productUrl":         f.ProductURL,
		"productDescription": f.ProductDescription,
		"reviewType":         f.ReviewType,
		"budget":             f.Budget,
		"additionalInfo":     f.AdditionalInfo,
	}
}

// InfluencerForm is the raw influencer application payload.
type InfluencerForm struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Niche     string `json:"niche"`
	Followers string `json:"followers"`
	About     string `json:"about"`
}

// Values flattens the form into the field map a Schema reads.
func (f InfluencerForm) Values() map[string]string {
	return map[string]string{
		"fullName":  f.FullName,
		"email":     f.Email,
		"phone":     f.Phone,
		"instagram": f.Instagram,
		"youtube":   f.YouTube,
		"twitter":   f.Twitter,
		"niche":     f.Niche,
		"followers": f.Followers,
		"about":     f.About,
	}
}
