// Package datafile locates and opens Browscap database files.
//
// A database may live on the local filesystem or in Amazon S3 (or any
// S3-compatible service such as MinIO). Both backends implement the
// read-only Storage interface. Files compressed with gzip or zstd are
// detected by their magic bytes and decoded on the fly, so callers always
// receive plain INI text.
//
// # Usage
//
//	rc, err := datafile.Open(ctx, "/var/lib/browscap/full_php_browscap.ini.gz", datafile.S3Config{})
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//
//	db, err := browscap.Open(rc)
//
// For S3 the location takes the form s3://bucket/key; region, credentials
// and endpoint come from S3Config:
//
//	rc, err := datafile.Open(ctx, "s3://assets/browscap.ini.zst", datafile.S3Config{
//	    Region:         "eu-central-1",
//	    Endpoint:       "http://localhost:9000",
//	    ForcePathStyle: true,
//	})
//
// # Security
//
// LocalStorage confines every path to its base directory and rejects
// traversal attempts with ErrInvalidPath.
//
// # Error Handling
//
// S3 failures are classified into package errors (ErrFileNotFound,
// ErrAccessDenied, ErrBucketNotFound, ErrOperationTimeout and others) so
// callers can use errors.Is regardless of backend.
package datafile
