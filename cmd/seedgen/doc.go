// Command seedgen builds the demo dataset of the CasasBR rental app.
//
//	seedgen generate [-n 120] [--seed S] [--out seed-data.json]
//	seedgen patch-images [--seed S] [--file seed-data.json] [--photos-dir DIR] [--backup]
//	seedgen validate [--file seed-data.json]
//	seedgen migrate
//	seedgen migrate:rollback
//	seedgen migrate:status
//	seedgen seed [--file seed-data.json] [--force]
//
// Running generate and then patch-images with no flags writes 120 listings
// to seed-data.json with galleries drawn from the /properties/ photo pool.
//
// Configuration is read from config/app.json, .env and the environment;
// see package config for the keys.
package main
