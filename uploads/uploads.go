package uploads

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"mavrix/db"
	"mavrix/mq"
	"mavrix/products"
	"mavrix/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const productImageDir = "./static/productpic"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

func processProductImage(file *multipart.FileHeader) (string, string, error) {
	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GetUUID()
	fileName := uniqueID + ".jpg"
	originalPath := filepath.Join(productImageDir, fileName)
	thumbDir := filepath.Join(productImageDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := ensureDirExists(productImageDir); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/productpic/" + fileName, uniqueID, nil
}

// UploadProductImage accepts a multipart "image" file, stores a resized copy,
// and points the product's img field at the new file.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	productID := ps.ByName("productid")
	if _, err := products.Get(ctx, productID); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No image provided")
		return
	}

	imgPath, _, err := processProductImage(files[0])
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to process image")
		return
	}

	_, err = db.ProductCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{"$set": bson.M{"img": imgPath, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to update product image")
		return
	}

	products.ReloadCatalog(ctx)
	mq.Emit(ctx, mq.Event{EntityType: "product", Method: "updated", EntityID: productID})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"img": imgPath})
}
