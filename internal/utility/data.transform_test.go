package utility

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional")
	assert.NoError(t, err, "Phải parse được tag hợp lệ")
	assert.Equal(t, "str_objectid", config.Type, "Phần đầu của tag phải là transform type")
	assert.True(t, config.Optional, "Flag optional phải được bật")

	config, err = ParseTransformTag("str_time,format=2006-01-02,required")
	assert.NoError(t, err)
	assert.Equal(t, "2006-01-02", config.Format, "Option format phải được parse")
	assert.True(t, config.Required, "Flag required phải được bật")

	config, err = ParseTransformTag("")
	assert.NoError(t, err, "Tag rỗng không được coi là lỗi")
	assert.Equal(t, "", config.Type, "Tag rỗng nghĩa là không transform")
}

func TestTransformFieldValue_ObjectID(t *testing.T) {
	config, _ := ParseTransformTag("str_objectid")
	targetType := reflect.TypeOf(primitive.ObjectID{})

	hex := "64f1a2b3c4d5e6f708090a0b"
	result, err := TransformFieldValue(hex, config, targetType)
	assert.NoError(t, err, "Phải convert được hex string hợp lệ")
	objID, ok := result.(primitive.ObjectID)
	assert.True(t, ok, "Kết quả phải là primitive.ObjectID")
	assert.Equal(t, hex, objID.Hex())

	_, err = TransformFieldValue("khong-phai-hex", config, targetType)
	assert.Error(t, err, "Hex string không hợp lệ phải trả về lỗi")
}

func TestTransformFieldValue_RequiredVaOptional(t *testing.T) {
	targetType := reflect.TypeOf("")

	required, _ := ParseTransformTag("str_objectid,required")
	_, err := TransformFieldValue(nil, required, targetType)
	assert.Error(t, err, "Field required không có giá trị phải trả về lỗi")

	optional, _ := ParseTransformTag("str_objectid,optional")
	result, err := TransformFieldValue("", optional, targetType)
	assert.NoError(t, err, "Field optional rỗng không được coi là lỗi")
	assert.Nil(t, result, "Field optional rỗng phải trả về nil")
}
