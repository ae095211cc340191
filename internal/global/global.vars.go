package global

import (
	"github.com/Lmineck/ordering-system/config"
	"github.com/Lmineck/ordering-system/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users      string // Tên collection cho người dùng
	Categories string // Tên collection cho danh mục nguyên liệu
	Items      string // Tên collection cho nguyên liệu
	Orders     string // Tên collection cho đơn đặt hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                                // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                               // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                  // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)      // Tên các collection

// Registry chứa các collections và databases đã khởi tạo
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
