// Package s3 implements blobstore.Store on Amazon S3.
package s3
