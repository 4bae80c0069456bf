package postgres

import "time"

// GORM row structs. Column and table names are kept camelCase to match the
// persisted layout consumed by the dashboard exports; array-valued
// attributes are opaque JSON text decoded by the converters in the
// repositories, never by the database.

// ModelRow is the GORM row for the models catalog.
type ModelRow struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Age          int       `gorm:"column:age;not null"`
	Gender       string    `gorm:"column:gender;type:varchar(10);not null"`
	Bio          string    `gorm:"column:bio;type:text"`
	ProfileImage string    `gorm:"column:profileImage;type:text"`
	VideoURL     string    `gorm:"column:videoUrl;type:text"`
	Height       int       `gorm:"column:height"`
	Experience   string    `gorm:"column:experience;type:text"`
	Specialties  string    `gorm:"column:specialties;type:text"`
	IsActive     int       `gorm:"column:isActive;not null;default:1"`
	CreatedAt    time.Time `gorm:"column:createdAt;autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (ModelRow) TableName() string {
	return "models"
}

// ContentCreatorRow is the GORM row for content creators.
type ContentCreatorRow struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Bio          string    `gorm:"column:bio;type:text"`
	ProfileImage string    `gorm:"column:profileImage;type:text"`
	PortfolioURL string    `gorm:"column:portfolioUrl;type:text"`
	Platforms    string    `gorm:"column:platforms;type:text"`
	ContentTypes string    `gorm:"column:contentTypes;type:text"`
	SampleWorks  string    `gorm:"column:sampleWorks;type:text"`
	IsActive     int       `gorm:"column:isActive;not null;default:1"`
	CreatedAt    time.Time `gorm:"column:createdAt;autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (ContentCreatorRow) TableName() string {
	return "contentCreators"
}

// VideoProductionRow is the GORM row for the video portfolio.
type VideoProductionRow struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title          string    `gorm:"column:title;type:varchar(255);not null"`
	Description    string    `gorm:"column:description;type:text"`
	VideoURL       string    `gorm:"column:videoUrl;type:text;not null"`
	ThumbnailURL   string    `gorm:"column:thumbnailUrl;type:text"`
	ProductionType string    `gorm:"column:productionType;type:varchar(100)"`
	ClientName     string    `gorm:"column:clientName;type:varchar(255)"`
	Duration       int       `gorm:"column:duration"`
	IsActive       int       `gorm:"column:isActive;not null;default:1"`
	CreatedAt      time.Time `gorm:"column:createdAt;autoCreateTime;index"`
	UpdatedAt      time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (VideoProductionRow) TableName() string {
	return "videoProductions"
}

// VoiceArtistRow is the GORM row for voice artists.
type VoiceArtistRow struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Bio          string    `gorm:"column:bio;type:text"`
	ProfileImage string    `gorm:"column:profileImage;type:text"`
	Gender       string    `gorm:"column:gender;type:varchar(10);not null"`
	VoiceType    string    `gorm:"column:voiceType;type:varchar(100)"`
	Languages    string    `gorm:"column:languages;type:text"`
	Accents      string    `gorm:"column:accents;type:text"`
	SampleAudios string    `gorm:"column:sampleAudios;type:text"`
	IsActive     int       `gorm:"column:isActive;not null;default:1"`
	CreatedAt    time.Time `gorm:"column:createdAt;autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (VoiceArtistRow) TableName() string {
	return "voiceArtists"
}

// ContentWritingRow is the GORM row for writing samples.
type ContentWritingRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	ContentType string    `gorm:"column:contentType;type:varchar(100)"`
	SampleText  string    `gorm:"column:sampleText;type:text"`
	ClientName  string    `gorm:"column:clientName;type:varchar(255)"`
	WordCount   int       `gorm:"column:wordCount"`
	IsActive    int       `gorm:"column:isActive;not null;default:1"`
	CreatedAt   time.Time `gorm:"column:createdAt;autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (ContentWritingRow) TableName() string {
	return "contentWriting"
}

// BannerRow is the GORM row for homepage banners.
type BannerRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	ImageURL    string    `gorm:"column:imageUrl;type:text;not null"`
	Link        string    `gorm:"column:link;type:text"`
	Position    int       `gorm:"column:position;not null;default:0"`
	IsActive    int       `gorm:"column:isActive;not null;default:1"`
	CreatedAt   time.Time `gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (BannerRow) TableName() string {
	return "banners"
}

// ServiceRequestRow is the GORM row for contact-form submissions.
type ServiceRequestRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(320);not null"`
	Phone     string    `gorm:"column:phone;type:varchar(50)"`
	Service   string    `gorm:"column:service;type:varchar(100);not null"`
	Message   string    `gorm:"column:message;type:text"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:pending"`
	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (ServiceRequestRow) TableName() string {
	return "serviceRequests"
}

// UserRow is the GORM row for accounts owned by the OAuth collaborator.
type UserRow struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OpenID       string    `gorm:"column:openId;type:varchar(64);uniqueIndex;not null"`
	Name         string    `gorm:"column:name;type:text"`
	Email        string    `gorm:"column:email;type:varchar(320)"`
	LoginMethod  string    `gorm:"column:loginMethod;type:varchar(64)"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:user"`
	CreatedAt    time.Time `gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;autoUpdateTime"`
	LastSignedIn time.Time `gorm:"column:lastSignedIn;autoCreateTime"`
}

func (UserRow) TableName() string {
	return "users"
}

// ClientRow, OrderRow and OrderMessageRow back a future order-management
// feature. They are migrated so the schema stays complete, but no
// repository exposes them yet.

type ClientRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Email       string    `gorm:"column:email;type:varchar(320);not null"`
	Phone       string    `gorm:"column:phone;type:varchar(50)"`
	TotalOrders int       `gorm:"column:totalOrders;default:0"`
	TotalPaid   int       `gorm:"column:totalPaid;default:0"`
	IsBlocked   int       `gorm:"column:isBlocked;default:0"`
	CreatedAt   time.Time `gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (ClientRow) TableName() string {
	return "clients"
}

type OrderRow struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderNumber string    `gorm:"column:orderNumber;type:varchar(50);uniqueIndex"`
	ClientID    int64     `gorm:"column:clientId;not null"`
	TalentID    int64     `gorm:"column:talentId"`
	TalentType  string    `gorm:"column:talentType;type:varchar(50)"`
	ServiceType string    `gorm:"column:serviceType;type:varchar(100);not null"`
	Price       int       `gorm:"column:price;not null"`
	Status      string    `gorm:"column:status;type:varchar(20);default:new"`
	AdminNotes  string    `gorm:"column:adminNotes;type:text"`
	CreatedAt   time.Time `gorm:"column:createdAt;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;autoUpdateTime"`
}

func (OrderRow) TableName() string {
	return "orders"
}

type OrderMessageRow struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID       int64     `gorm:"column:orderId;not null;index"`
	SenderType    string    `gorm:"column:senderType;type:varchar(20);not null"`
	Message       string    `gorm:"column:message;type:text"`
	AttachmentURL string    `gorm:"column:attachmentUrl;type:text"`
	CreatedAt     time.Time `gorm:"column:createdAt;autoCreateTime"`
}

func (OrderMessageRow) TableName() string {
	return "orderMessages"
}
