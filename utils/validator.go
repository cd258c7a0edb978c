package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	// 自定义验证错误缓存
	validationErrorsCache = make(map[string]string)
)

// 初始化验证器
func init() {
	// 服务层直接复用请求结构体上的 binding 标签
	validate.SetTagName("binding")
	registerCustomRules(validate)
}

// RegisterBindingValidations 把自定义规则注册到Gin的绑定验证器
// 必须在路由开始处理请求前调用一次
func RegisterBindingValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(v)
	}
}

// registerCustomRules 注册自定义验证规则
func registerCustomRules(v *validator.Validate) {
	v.RegisterValidation("stars", validateStars)
	v.RegisterValidation("sort_order", validateSortOrder)
	v.RegisterValidation("view_mode", validateViewMode)
	v.RegisterValidation("affiliate_url", validateAffiliateURL)
}

// Validator 验证器结构
type Validator struct {
	validator *validator.Validate
}

// NewValidator 创建新的验证器实例
func NewValidator() *Validator {
	return &Validator{
		validator: validate,
	}
}

// Validate 验证结构体
func (v *Validator) Validate(obj interface{}) error {
	if err := v.validator.Struct(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return formatValidationErrors(validationErrors)
		}
		return err
	}
	return nil
}

// formatValidationErrors 格式化验证错误信息
func formatValidationErrors(errs []validator.FieldError) error {
	errorMap := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		// 先尝试从缓存中获取错误信息
		cacheKey := fmt.Sprintf("%s_%s", field, tag)
		if msg, exists := validationErrorsCache[cacheKey]; exists {
			errorMap[field] = msg
			continue
		}

		// 生成自定义错误信息
		msg := getErrorMessage(field, tag, param)
		validationErrorsCache[cacheKey] = msg
		errorMap[field] = msg
	}

	return &ValidationError{Errors: errorMap}
}

// ValidationError 验证错误结构
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error 实现error接口
func (ve *ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Errors))
	for field, msg := range ve.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

// getErrorMessage 根据字段和规则生成错误信息
func getErrorMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s wajib diisi", field)
	case "min":
		return fmt.Sprintf("%s minimal %s karakter", field, param)
	case "max":
		return fmt.Sprintf("%s maksimal %s karakter", field, param)
	case "email":
		return fmt.Sprintf("%s bukan alamat email yang valid", field)
	case "gte":
		return fmt.Sprintf("%s tidak boleh kurang dari %s", field, param)
	case "lte":
		return fmt.Sprintf("%s tidak boleh lebih dari %s", field, param)
	case "stars":
		return fmt.Sprintf("%s harus bilangan bulat antara 1 dan 5", field)
	case "sort_order":
		return fmt.Sprintf("%s harus default, asc, atau desc", field)
	case "view_mode":
		return fmt.Sprintf("%s harus grid, list, atau minimal", field)
	case "affiliate_url":
		return fmt.Sprintf("%s bukan URL yang valid", field)
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}

// validateStars 评分必须是1-5的整数
func validateStars(fl validator.FieldLevel) bool {
	stars := fl.Field().Int()
	return stars >= 1 && stars <= 5
}

// validateSortOrder 排序参数取值检查
func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "default", "asc", "desc":
		return true
	}
	return false
}

// validateViewMode 展示模式取值检查
func validateViewMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "grid", "list", "minimal":
		return true
	}
	return false
}

// validateAffiliateURL 联盟链接为空或是合法的 http(s) URL
func validateAffiliateURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
