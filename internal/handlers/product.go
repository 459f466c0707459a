package handlers

import (
	"errors"
	"strconv"

	domain "shopback/internal/errors"
	"shopback/internal/services/product"
	"shopback/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService product.Service
}

func NewProductHandler(productService product.Service) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.productService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to list products")
	}

	return utils.Success(c, fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.BadRequest(c, "Invalid product id")
	}

	view, err := h.productService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return utils.NotFound(c, "Product not found")
		}
		return utils.InternalError(c, "Failed to get product")
	}

	return utils.Success(c, fiber.Map{
		"product": view,
	})
}

func (h *ProductHandler) ListByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	products, err := h.productService.ListByCategory(c.Context(), category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to list products")
	}

	return utils.Success(c, fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input product.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	view, err := h.productService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) || errors.Is(err, domain.ErrInvalidAmount) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to create product")
	}

	return utils.Created(c, fiber.Map{
		"product": view,
	})
}
